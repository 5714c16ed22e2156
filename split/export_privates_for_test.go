// SPDX-License-Identifier: MIT

package split

// Test-only exports of internal pure helpers, so the intricate
// remainder-redistribution rules get direct coverage.
var (
	ColumnBlocksForTest          = columnBlocks
	RedistributeRemainderForTest = redistributeRemainder
	RowBlocksForTest             = rowBlocks
	SampleComplementForTest      = sampleComplement
)
