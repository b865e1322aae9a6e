// Package format renders table profiles for the terminal.
package format

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"icsvgen/profile"
)

// Summary writes one line per column profile as a bordered table.
func Summary(t *profile.Table, writer io.Writer) error {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"field", "type", "min", "max", "missing", "required"})

	for _, c := range t.Columns {
		tw.AppendRow(table.Row{
			c.Name,
			c.Type.String(),
			profile.FormatValue(c.Min),
			profile.FormatValue(c.Max),
			strconv.FormatInt(c.MissingCount, 10),
			strconv.FormatBool(c.Required),
		})
	}

	tw.AppendSeparator()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	tw.Style().Options.DrawBorder = false

	if _, err := writer.Write([]byte(tw.Render())); err != nil {
		return err
	}

	_, err := writer.Write([]byte("\n"))
	return err
}
