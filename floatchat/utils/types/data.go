// floatchat/utils/types/data.go
package types

// FilterRequest mirrors the dashboard's filter panel: a map overlay, a
// depth slider and a basin multi-select.
type FilterRequest struct {
	Overlay  string   `json:"overlay,omitempty"`
	DepthMin int      `json:"depth_min"`
	DepthMax int      `json:"depth_max"`
	Basins   []string `json:"basins,omitempty"`
}

type FilterResponse struct {
	Message string `json:"message"`
}

// ExportRequest selects the download format; data_range and metadata are
// accepted for parity with the export panel but do not change the synthetic
// sample.
type ExportRequest struct {
	Format          string `json:"format"`
	DataRange       string `json:"data_range,omitempty"`
	IncludeMetadata bool   `json:"include_metadata,omitempty"`
}
