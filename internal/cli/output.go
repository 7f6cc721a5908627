package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// printer writes command results in the format chosen with --output.
type printer struct {
	w      io.Writer
	format string
}

func validFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

// print renders v as JSON or YAML, or as a table built from headers and rows.
func (p printer) print(v any, headers []string, rows [][]any) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		renderTable(p.w, headers, rows)
		return nil
	}
}

func renderTable(w io.Writer, headers []string, rows [][]any) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	headerRow := table.Row{}
	for _, h := range headers {
		headerRow = append(headerRow, h)
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		t.AppendRow(table.Row(row))
	}

	t.Render()
}
