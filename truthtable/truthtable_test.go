package truthtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propkit/propkit/logic"
)

func mustParse(t *testing.T, text string) logic.Formula {
	t.Helper()
	f, err := logic.Parse(text)
	require.NoError(t, err)
	return f
}

func TestGenerateRowCount(t *testing.T) {
	f := mustParse(t, "A AND B")
	table := Generate([]NamedFormula{{"F", f}}, nil)
	assert.Equal(t, []string{"A", "B"}, table.Atoms)
	require.Len(t, table.Rows, 4)

	trueRows := 0
	for _, row := range table.Rows {
		if row.Values["F"] {
			trueRows++
		}
	}
	assert.Equal(t, 1, trueRows)
}

func TestGenerateRowOrder(t *testing.T) {
	f := mustParse(t, "A OR B")
	table := Generate([]NamedFormula{{"F", f}}, []string{"A", "B"})
	require.Len(t, table.Rows, 4)

	// The last atom is the least-significant bit of the row counter.
	want := []map[string]bool{
		{"A": false, "B": false},
		{"A": false, "B": true},
		{"A": true, "B": false},
		{"A": true, "B": true},
	}
	for i, row := range table.Rows {
		assert.Equal(t, want[i], row.Assignment, "row %d", i)
	}
}

func TestGenerateAssignmentsUnique(t *testing.T) {
	f := mustParse(t, "A AND B AND C")
	table := Generate([]NamedFormula{{"F", f}}, nil)
	require.Len(t, table.Rows, 8)
	seen := make(map[[3]bool]struct{})
	for _, row := range table.Rows {
		key := [3]bool{row.Assignment["A"], row.Assignment["B"], row.Assignment["C"]}
		_, dup := seen[key]
		assert.False(t, dup, "duplicate assignment %v", key)
		seen[key] = struct{}{}
	}
}

func TestGenerateZeroAtoms(t *testing.T) {
	table := Generate(nil, []string{})
	require.Len(t, table.Rows, 1)
	assert.Empty(t, table.Rows[0].Assignment)
}

func TestGenerateExplicitAtomOrder(t *testing.T) {
	f := mustParse(t, "A")
	table := Generate([]NamedFormula{{"F", f}}, []string{"Z", "A", "Z", "M"})
	assert.Equal(t, []string{"Z", "A", "M"}, table.Atoms)
	assert.Len(t, table.Rows, 8)
}

func TestGenerateExtraAtomsBeyondFormula(t *testing.T) {
	f := mustParse(t, "A")
	table := Generate([]NamedFormula{{"F", f}}, []string{"A", "B"})
	require.Len(t, table.Rows, 4)
	for _, row := range table.Rows {
		assert.Equal(t, row.Assignment["A"], row.Values["F"])
	}
}

func TestGenerateMultipleFormulas(t *testing.T) {
	table := Generate([]NamedFormula{
		{"Conj", mustParse(t, "A AND B")},
		{"Disj", mustParse(t, "A OR B")},
	}, nil)
	assert.Equal(t, []string{"Conj", "Disj"}, table.Names)
	for _, row := range table.Rows {
		a, b := row.Assignment["A"], row.Assignment["B"]
		assert.Equal(t, a && b, row.Values["Conj"])
		assert.Equal(t, a || b, row.Values["Disj"])
	}
}

func TestGenerateFiltered(t *testing.T) {
	f := mustParse(t, "A AND B")
	table := GenerateFiltered([]NamedFormula{{"F", f}}, nil, NamedFormula{"OnlyA", mustParse(t, "A")})
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"F", "OnlyA"}, table.Names)
	for _, row := range table.Rows {
		assert.True(t, row.Assignment["A"])
		assert.True(t, row.Values["OnlyA"])
	}
}
