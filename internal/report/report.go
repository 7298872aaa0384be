// Package report renders a check run for humans (text) or tooling (YAML).
package report

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/tabcheck-cli/internal/checks"
)

// Text renders a compact human-readable report of one run.
func Text(r *checks.RunReport) string {
	var b strings.Builder
	b.WriteString("[DATA QUALITY REPORT]\n")
	b.WriteString(fmt.Sprintf("Run: %s\n", r.ID))
	b.WriteString(fmt.Sprintf("File: %s\n", r.Input))
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", r.Columns))

	for _, res := range r.Results {
		b.WriteString(fmt.Sprintf("%s %s: %s\n", glyph(res.Status), res.Name, res.Message))
		for _, d := range res.Details {
			b.WriteString(fmt.Sprintf("  - %s\n", d))
		}
	}

	b.WriteString("\n")
	if n := r.Warnings(); n > 0 {
		b.WriteString(fmt.Sprintf("⚠ %d of %d checks reported problems\n", n, len(r.Results)))
	} else {
		b.WriteString(fmt.Sprintf("✓ All %d checks passed\n", len(r.Results)))
	}
	return b.String()
}

// YAML renders the run as YAML for machine consumption.
func YAML(r *checks.RunReport) ([]byte, error) {
	b, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return b, nil
}

func glyph(status string) string {
	switch status {
	case checks.StatusWarning:
		return "⚠"
	case checks.StatusError:
		return "✗"
	default:
		return "✓"
	}
}
