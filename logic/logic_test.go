package logic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name       string
		formula    Formula
		assignment map[string]bool
		want       bool
	}{
		{"atom true", Atom("A"), map[string]bool{"A": true}, true},
		{"atom false", Atom("A"), map[string]bool{"A": false}, false},
		{"missing atom defaults to false", Atom("A"), map[string]bool{}, false},
		{"not", Not(Atom("A")), map[string]bool{"A": true}, false},
		{"and with negation", And(Atom("A"), Not(Atom("B"))), map[string]bool{"A": true, "B": false}, true},
		{"and with negation, negated side true", And(Atom("A"), Not(Atom("B"))), map[string]bool{"A": true, "B": true}, false},
		{"or", Or(Atom("A"), Atom("B")), map[string]bool{"B": true}, true},
		{"xor both true", Xor(Atom("A"), Atom("B")), map[string]bool{"A": true, "B": true}, false},
		{"xor one true", Xor(Atom("A"), Atom("B")), map[string]bool{"A": true}, true},
		{"implies vacuous", Implies(Atom("A"), Atom("B")), map[string]bool{"A": false, "B": false}, true},
		{"implies broken", Implies(Atom("A"), Atom("B")), map[string]bool{"A": true, "B": false}, false},
		{"iff both false", Iff(Atom("A"), Atom("B")), map[string]bool{}, true},
		{"iff mixed", Iff(Atom("A"), Atom("B")), map[string]bool{"A": true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.formula.Eval(tt.assignment))
		})
	}
}

func TestAtoms(t *testing.T) {
	f := Implies(And(Atom("Fever"), Or(Atom("Cough"), Atom("SoreThroat"))), Atom("Flu"))
	assert.Equal(t, []string{"Cough", "Fever", "Flu", "SoreThroat"}, Atoms(f))

	set := AtomSet(f)
	assert.Len(t, set, 4)
	_, ok := set["Fever"]
	assert.True(t, ok)
}

func TestAtomsDuplicatesCollapse(t *testing.T) {
	f := Or(Atom("A"), And(Atom("A"), Atom("A")))
	assert.Equal(t, []string{"A"}, Atoms(f))
}

func TestString(t *testing.T) {
	tests := []struct {
		formula Formula
		want    string
	}{
		{Atom("A"), "A"},
		{Not(Atom("A")), "NOT A"},
		{Not(Not(Atom("A"))), "NOT NOT A"},
		{Not(And(Atom("A"), Atom("B"))), "NOT (A AND B)"},
		{And(Atom("A"), Not(Atom("B"))), "A AND NOT B"},
		{And(Or(Atom("A"), Atom("B")), Atom("C")), "(A OR B) AND C"},
		{Or(And(Atom("A"), Atom("B")), Atom("C")), "A AND B OR C"},
		{Implies(And(Atom("A"), Atom("B")), Atom("C")), "A AND B -> C"},
		{Iff(Atom("A"), Implies(Atom("B"), Atom("C"))), "A <-> B -> C"},
		{Implies(Iff(Atom("A"), Atom("B")), Atom("C")), "(A <-> B) -> C"},
		{Xor(Atom("A"), Or(Atom("B"), Atom("C"))), "A XOR (B OR C)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.formula.String())
	}
}

// Formula nodes are value objects: structurally identical trees compare
// equal through the interface.
func TestStructuralEquality(t *testing.T) {
	f1 := Implies(And(Atom("A"), Atom("B")), Atom("C"))
	f2 := Implies(And(Atom("A"), Atom("B")), Atom("C"))
	assert.Equal(t, f1, f2)
	assert.NotEqual(t, f1, Implies(And(Atom("A"), Atom("B")), Atom("D")))
}

func ExampleParse() {
	f, err := Parse("Fever AND (Cough OR SoreThroat) -> Flu")
	if err != nil {
		fmt.Println(err)
		return
	}
	assignment := map[string]bool{"Fever": true, "Cough": true, "Flu": true}
	fmt.Println(f.Eval(assignment))
	// Output: true
}
