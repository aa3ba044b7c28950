package cli

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/fahmaliyi/mypw/vault"
)

// renderList prints the password-free vault listing as a table.
func renderList(items []vault.ListItem) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle("mypw vault")
	t.AppendHeader(table.Row{"Service", "Username"})
	for _, item := range items {
		t.AppendRow(table.Row{item.Service, item.Username})
	}
	t.Render()
}

// renderEntry prints a single entry with the password masked.
func renderEntry(service string, e vault.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Details for %q", service)
	t.AppendRow(table.Row{"Username", e.Username})
	t.AppendRow(table.Row{"Password", "********"})
	t.Render()
}
