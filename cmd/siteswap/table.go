package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rgonek/siteswap-renderer/siteswap"
)

type column struct {
	title string
	align text.Align
}

var (
	explainColumns = []column{
		{title: "Key", align: text.AlignLeft},
		{title: "Value", align: text.AlignLeft},
		{title: "Source", align: text.AlignLeft},
		{title: "Status", align: text.AlignLeft},
	}
	settingsColumns = []column{
		{title: "Setting", align: text.AlignLeft},
		{title: "Value", align: text.AlignRight},
		{title: "Default", align: text.AlignRight},
		{title: "Changed", align: text.AlignCenter},
	}
)

// explainTable lists sent parameters in query order. Elided ones follow
// below a separator.
func explainTable(result siteswap.Result) string {
	tw := newTable(explainColumns)
	for _, param := range result.Sent {
		tw.AppendRow(table.Row{param.Key, param.Value.String(), string(param.Source), "sent"})
	}
	if len(result.Sent) > 0 && len(result.Elided) > 0 {
		tw.AppendSeparator()
	}
	for _, elision := range result.Elided {
		status := "elided (default)"
		if elision.Reason == siteswap.ElidedInternal {
			status = "elided (internal)"
		}
		tw.AppendRow(table.Row{elision.Key, elision.Value.String(), string(elision.Source), status})
	}
	return tw.Render()
}

// settingsTable compares current against defaults, one row per setting key.
func settingsTable(current, defaults siteswap.Settings) string {
	tw := newTable(settingsColumns)
	for _, key := range siteswap.SettingsKeys() {
		value, _ := current.Get(key)
		def, _ := defaults.Get(key)
		changed := ""
		if !value.Equal(def) {
			changed = "*"
		}
		tw.AppendRow(table.Row{key, value.String(), def.String(), changed})
	}
	return tw.Render()
}

func newTable(columns []column) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.title
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       col.align,
			AlignHeader: text.AlignLeft,
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)
	return tw
}
