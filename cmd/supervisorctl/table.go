package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// tableColumn describes one column of a terminal table.
type tableColumn struct {
	Header string
	Align  text.Align
	// Colors picks the colors of a cell from its value; nil leaves it plain.
	Colors func(value string) text.Colors
}

func renderTable(columns []tableColumn, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.Header
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       col.Align,
			AlignHeader: text.AlignLeft,
		}
		if col.Colors != nil {
			colors := col.Colors
			configs[i].Transformer = func(val any) string {
				s, _ := val.(string)
				return colors(s).Sprint(s)
			}
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range r {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}

// stateColors colors process and supervisord state names by health.
func stateColors(state string) text.Colors {
	switch state {
	case "RUNNING":
		return text.Colors{text.FgGreen}
	case "STARTING", "STOPPING", "BACKOFF", "RESTARTING", "SHUTDOWN":
		return text.Colors{text.FgYellow}
	case "FATAL", "EXITED", "UNKNOWN", "ERROR":
		return text.Colors{text.FgRed, text.Bold}
	}
	return nil
}
