package trainer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/Diavel78/product-trainer/pkg/audit"
	"github.com/Diavel78/product-trainer/pkg/delta"
	"github.com/Diavel78/product-trainer/pkg/errors"
	"github.com/Diavel78/product-trainer/pkg/feeds"
	"github.com/Diavel78/product-trainer/pkg/inventory"
	"github.com/Diavel78/product-trainer/pkg/summary"
)

// Report is the full output of one pipeline run.
type Report struct {
	GeneratedAt time.Time                  `json:"generated_at" yaml:"generated_at"`
	Summary     *summary.Summary           `json:"summary" yaml:"summary"`
	Issues      map[feeds.ID][]audit.Issue `json:"issues" yaml:"issues"`
	Delta       *delta.Changeset           `json:"delta" yaml:"delta"`
	Units       inventory.Units            `json:"units" yaml:"units"`
}

// TotalIssues returns the issue count across all feeds.
func (r *Report) TotalIssues() int {
	var n int
	for _, list := range r.Issues {
		n += len(list)
	}
	return n
}

// WriteYAML writes the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return errors.WrapParse("yaml", "report", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return errors.WrapParse("json", "report", err)
	}
	return nil
}
