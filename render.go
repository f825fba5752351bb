package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/propkit/propkit/inference"
	"github.com/propkit/propkit/ruleset"
	"github.com/propkit/propkit/truthtable"
)

func renderTable(w io.Writer, table truthtable.Table) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := append(append([]string{}, table.Atoms...), table.Names...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range table.Rows {
		cells := make([]string, 0, len(header))
		for _, atom := range table.Atoms {
			cells = append(cells, boolCell(row.Assignment[atom]))
		}
		for _, name := range table.Names {
			cells = append(cells, boolCell(row.Values[name]))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
	fmt.Fprintf(w, "%d rows\n", len(table.Rows))
}

func boolCell(v bool) string {
	if v {
		return "T"
	}
	return "F"
}

func renderProof(w io.Writer, node *inference.ProofNode, depth int) {
	indent := strings.Repeat("  ", depth)
	status := "failed"
	if node.Succeeded {
		status = "ok"
	}
	fmt.Fprintf(w, "%s[%s] %s: %s\n", indent, status, node.Goal, node.Message)
	for _, child := range node.Premises {
		renderProof(w, child, depth+1)
	}
}

func renderRules(w io.Writer, rules []inference.Rule) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPREMISE\tCONCLUSION\tTEXT")
	for _, r := range rules {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Premise, r.Conclusion, r.Description)
	}
	tw.Flush()
}

func exportRules(path, domain string, rules []inference.Rule) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer f.Close()
	return ruleset.EncodeJSON(f, ruleset.Export(domain, rules))
}
