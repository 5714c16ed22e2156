package source

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/katalvlaran/tabprep/frame"
)

// DefaultCatalogURL is the base URL of the public dataset catalog.
const DefaultCatalogURL = "https://catalog.tabprep.dev/api/v1/json"

// RemoteDataset is what a Catalog hands back for one dataset: the raw
// feature table, the raw target, the per-column nominal indicator, and
// the attribute-name list (features only, target excluded).
type RemoteDataset struct {
	Name           string
	Table          *frame.Table
	Target         *frame.Series
	AttributeNames []string
	Nominal        map[string]bool
}

// Catalog fetches a named or id-numbered dataset. Implementations must
// return ErrNotFound (wrapped or bare) when the identifier does not
// resolve.
type Catalog interface {
	Fetch(identifier string) (*RemoteDataset, error)
}

// HTTPCatalog talks to an OpenML-style JSON catalog over HTTP. Zero
// value is not usable; construct with NewHTTPCatalog.
type HTTPCatalog struct {
	base   string
	client *http.Client
}

// NewHTTPCatalog returns a catalog client for the given base URL
// (DefaultCatalogURL when empty). A nil http.Client means
// http.DefaultClient.
func NewHTTPCatalog(base string, client *http.Client) *HTTPCatalog {
	if base == "" {
		base = DefaultCatalogURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPCatalog{base: base, client: client}
}

// Wire payloads.
type listEntry struct {
	Did  int    `json:"did"`
	Name string `json:"name"`
}

type datasetPayload struct {
	Did           int    `json:"did"`
	Name          string `json:"name"`
	DefaultTarget string `json:"default_target"`
	Attributes    []struct {
		Name    string `json:"name"`
		Nominal bool   `json:"nominal"`
	} `json:"attributes"`
	Data [][]string `json:"data"`
}

// Fetch resolves the identifier against the catalog listing (symbolic
// name or numeric id) and downloads the dataset. A numeric id is
// resolved to its display name via the listing.
func (c *HTTPCatalog) Fetch(identifier string) (*RemoteDataset, error) {
	var list []listEntry
	if err := c.getJSON(c.base+"/data/list", &list); err != nil {
		return nil, err
	}

	did := -1
	if id, err := strconv.Atoi(identifier); err == nil {
		for _, e := range list {
			if e.Did == id {
				did = id
				break
			}
		}
	} else {
		for _, e := range list {
			if e.Name == identifier {
				did = e.Did
				break
			}
		}
	}
	if did < 0 {
		return nil, fmt.Errorf("%w: %q not in catalog listing", ErrNotFound, identifier)
	}

	var payload datasetPayload
	if err := c.getJSON(fmt.Sprintf("%s/data/%d", c.base, did), &payload); err != nil {
		return nil, err
	}
	return payload.toDataset()
}

func (c *HTTPCatalog) getJSON(url string, out any) error {
	resp, err := c.client.Get(url)
	if err != nil {
		return fmt.Errorf("source: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("source: fetch %s: unexpected status %s", url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("source: decode %s: %w", url, err)
	}
	return nil
}

// toDataset splits the wire payload into feature table and target.
func (p *datasetPayload) toDataset() (*RemoteDataset, error) {
	targetPos := -1
	for i, a := range p.Attributes {
		if a.Name == p.DefaultTarget {
			targetPos = i
		}
	}
	if targetPos < 0 {
		return nil, fmt.Errorf("%w: target %q in dataset %q", ErrMissingColumn, p.DefaultTarget, p.Name)
	}

	nRows := len(p.Data)
	index := make([]string, nRows)
	target := make([]string, nRows)
	var featNames []string
	nominal := make(map[string]bool, len(p.Attributes)-1)
	var featPos []int
	for i, a := range p.Attributes {
		if i == targetPos {
			continue
		}
		featPos = append(featPos, i)
		featNames = append(featNames, a.Name)
		nominal[a.Name] = a.Nominal
	}

	cells := make([][]string, len(featPos))
	for c := range cells {
		cells[c] = make([]string, nRows)
	}
	for r, rec := range p.Data {
		if len(rec) != len(p.Attributes) {
			return nil, fmt.Errorf("source: dataset %q row %d has %d fields, expected %d",
				p.Name, r, len(rec), len(p.Attributes))
		}
		index[r] = strconv.Itoa(r)
		target[r] = rec[targetPos]
		for c, pos := range featPos {
			cells[c][r] = rec[pos]
		}
	}

	cols := make([]*frame.Series, len(featNames))
	for c, name := range featNames {
		cols[c] = frame.NewStringSeries(name, cells[c])
	}
	tbl, err := frame.NewTable(index, cols...)
	if err != nil {
		return nil, err
	}
	return &RemoteDataset{
		Name:           p.Name,
		Table:          tbl,
		Target:         frame.NewStringSeries(p.DefaultTarget, target),
		AttributeNames: featNames,
		Nominal:        nominal,
	}, nil
}
