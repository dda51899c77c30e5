package controllers

import (
	"bytes"
	"context"

	"floatchat/floatchat/export"
	"floatchat/floatchat/synthetic"
	"floatchat/floatchat/utils/logging"
	types "floatchat/floatchat/utils/types"
)

const sampleRows = 10

// ExportController produces synthetic data downloads.
type ExportController struct{}

func NewExportController() *ExportController {
	return &ExportController{}
}

// Generate builds the export payload for the requested format. Unsupported
// formats return export.ErrUnsupportedFormat with no partial payload.
func (c *ExportController) Generate(ctx context.Context, req types.ExportRequest) ([]byte, error) {
	defer logging.LogDuration(ctx, "export_controller_generate")()
	records := synthetic.SampleRecords(sampleRows)
	var buf bytes.Buffer
	if err := export.Write(&buf, export.Format(req.Format), records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Preview returns the rows the export would contain.
func (c *ExportController) Preview(ctx context.Context) []synthetic.SampleRecord {
	return synthetic.SampleRecords(sampleRows)
}

// Formats lists every offered format, supported or not.
func (c *ExportController) Formats(ctx context.Context) []string {
	formats := export.Formats()
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}
