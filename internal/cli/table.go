package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderTable renders headers and rows as a rounded unicode table
func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleRounded)

	headerRow := make(table.Row, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	w.AppendHeader(headerRow)

	for _, row := range rows {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			tableRow[i] = cell
		}
		w.AppendRow(tableRow)
	}

	configs := make([]table.ColumnConfig, 0, len(aligns))
	for i, align := range aligns {
		cfg := table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		}
		if align == alignRight {
			cfg.Align = text.AlignRight
		}
		configs = append(configs, cfg)
	}
	w.SetColumnConfigs(configs)

	return w.Render()
}
