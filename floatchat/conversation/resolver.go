package conversation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Resolver maps a submitted query to an assistant response. Resolve must be
// total: every input gets a non-empty response, never an error.
type Resolver interface {
	Resolve(query string) string
	QuickQueries() []string
}

// fallbackTemplate answers every query not in the canned mapping. The
// query is echoed back verbatim.
const fallbackTemplate = "I'm processing your request for '%s'. Here are the results visualized on the map and graphs."

var defaultQuickQueries = []string{
	"Show floats near Hawaii",
	"Salinity trends last 6 months",
	"Temperature at 200m depth",
	"Compare BGC parameters",
}

var defaultResponses = map[string]string{
	"Show floats near Hawaii":       "I found 12 ARGO floats near Hawaii in the last month. Here are their trajectories and data profiles.",
	"Salinity trends last 6 months": "Salinity has shown a slight decrease of 0.2 PSU in the Pacific Ocean over the last 6 months. Here's the trend analysis.",
	"Temperature at 200m depth":     "The average temperature at 200m depth is 15.3°C across all ARGO floats. Here's the spatial distribution.",
	"Compare BGC parameters":        "I've compared Bio-Geo-Chemical parameters across different ocean basins. The Indian Ocean shows higher chlorophyll concentrations.",
}

// CannedResolver resolves queries against an immutable exact-match mapping.
// Unmatched queries fall through to the fallback template, so resolution
// never fails.
type CannedResolver struct {
	responses map[string]string
	quick     []string
}

func NewCannedResolver() *CannedResolver {
	return &CannedResolver{
		responses: defaultResponses,
		quick:     defaultQuickQueries,
	}
}

// resolverFile is the YAML shape accepted by LoadResolver.
type resolverFile struct {
	QuickQueries []string          `yaml:"quick_queries"`
	Responses    map[string]string `yaml:"responses"`
}

// LoadResolver reads a query-to-response mapping from a YAML file so a real
// backend (or a different canned set) can be swapped in without touching
// the session store.
func LoadResolver(path string) (*CannedResolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file resolverFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse resolver file %s: %w", path, err)
	}
	if len(file.Responses) == 0 {
		return nil, fmt.Errorf("resolver file %s has no responses", path)
	}
	quick := file.QuickQueries
	if len(quick) == 0 {
		quick = defaultQuickQueries
	}
	return &CannedResolver{responses: file.Responses, quick: quick}, nil
}

func (r *CannedResolver) Resolve(query string) string {
	if resp, ok := r.responses[query]; ok {
		return resp
	}
	return fmt.Sprintf(fallbackTemplate, query)
}

// QuickQueries returns the ordered one-click query shortcuts.
func (r *CannedResolver) QuickQueries() []string {
	out := make([]string, len(r.quick))
	copy(out, r.quick)
	return out
}
