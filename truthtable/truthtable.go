// Package truthtable enumerates boolean assignments over an atom set and
// evaluates formulas against each of them.
package truthtable

import (
	"sort"

	"github.com/propkit/propkit/logic"
)

// A NamedFormula pairs a formula with the column name it is reported under.
type NamedFormula struct {
	Name    string
	Formula logic.Formula
}

// A Row is one assignment plus the value of every formula column under it.
type Row struct {
	Assignment map[string]bool `json:"assignment"`
	Values     map[string]bool `json:"values"`
}

// A Table is the result of enumerating all assignments over an ordered atom
// set. Rows are visited as a binary counter with the last atom in Atoms as
// the least-significant bit, so the first row is all-false and the last is
// all-true.
type Table struct {
	Atoms []string `json:"atoms"`
	Names []string `json:"names"`
	Rows  []Row    `json:"rows"`
}

// Generate enumerates all 2^n assignments over the atom set and evaluates
// every formula per row. If atoms is nil, the atom set is the sorted union
// of the formulas' atoms; otherwise the given order is kept, duplicates
// removed on first occurrence. Zero atoms yield a single row with the empty
// assignment.
//
// The generator performs no size guard: callers are expected to bound the
// atom count before invoking it (2^n rows are materialized).
func Generate(formulas []NamedFormula, atoms []string) Table {
	return generate(formulas, atoms, nil)
}

// GenerateFiltered behaves like Generate but keeps only the rows where the
// filter formula holds, recording the filter as an extra always-true
// column.
func GenerateFiltered(formulas []NamedFormula, atoms []string, filter NamedFormula) Table {
	return generate(formulas, atoms, &filter)
}

func generate(formulas []NamedFormula, atoms []string, filter *NamedFormula) Table {
	var atomList []string
	if atoms != nil {
		seen := make(map[string]struct{}, len(atoms))
		for _, a := range atoms {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			atomList = append(atomList, a)
		}
	} else {
		union := make(map[string]struct{})
		for _, nf := range formulas {
			for name := range logic.AtomSet(nf.Formula) {
				union[name] = struct{}{}
			}
		}
		atomList = make([]string, 0, len(union))
		for name := range union {
			atomList = append(atomList, name)
		}
		sort.Strings(atomList)
	}

	names := make([]string, 0, len(formulas)+1)
	for _, nf := range formulas {
		names = append(names, nf.Name)
	}
	if filter != nil {
		names = append(names, filter.Name)
	}

	n := len(atomList)
	total := 1 << n
	rows := make([]Row, 0, total)
	for i := 0; i < total; i++ {
		assignment := make(map[string]bool, n)
		for j, a := range atomList {
			assignment[a] = i>>(n-1-j)&1 == 1
		}
		values := make(map[string]bool, len(formulas)+1)
		for _, nf := range formulas {
			values[nf.Name] = nf.Formula.Eval(assignment)
		}
		if filter != nil {
			if !filter.Formula.Eval(assignment) {
				continue
			}
			values[filter.Name] = true
		}
		rows = append(rows, Row{Assignment: assignment, Values: values})
	}
	return Table{Atoms: atomList, Names: names, Rows: rows}
}
