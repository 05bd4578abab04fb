package main

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// tableRowWriter collects presenter rows into a terminal table. Nothing is
// printed until Render, so a listing cut short still shows what was fetched.
type tableRowWriter struct {
	table *tablewriter.Table
	rows  int
}

func newTableRowWriter(out io.Writer) *tableRowWriter {
	table := tablewriter.NewWriter(out)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	return &tableRowWriter{table: table}
}

func (w *tableRowWriter) WriteHeader(cells []string) error {
	w.table.SetHeader(cells)
	return nil
}

func (w *tableRowWriter) WriteRow(cells []string) error {
	w.table.Append(cells)
	w.rows++
	return nil
}

// Render prints the table; an empty listing prints nothing.
func (w *tableRowWriter) Render() {
	if w.rows == 0 {
		return
	}
	w.table.Render()
}
