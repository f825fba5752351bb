package logic

import "sort"

// Operator precedence, loosest to tightest. The printer wraps a child in
// parentheses iff its precedence is strictly lower than its parent's.
const (
	precIff = iota + 1
	precImplies
	precOr
	precXor
	precAnd
	precNot
	precAtom
)

// A Formula is a propositional formula over named atoms. The set of node
// kinds is closed: Atom, Not, And, Or, Xor, Implies and Iff are the only
// constructors, and the interface cannot be implemented outside this
// package.
type Formula interface {
	// Eval returns the truth value of the formula under the given
	// assignment. An atom missing from the assignment is false.
	Eval(assignment map[string]bool) bool

	// String renders the formula in canonical textual form. The result
	// parses back to a structurally equal formula.
	String() string

	collectAtoms(set map[string]struct{})
	precedence() int
}

// AtomSet returns the set of atom names occurring in f.
func AtomSet(f Formula) map[string]struct{} {
	set := make(map[string]struct{})
	f.collectAtoms(set)
	return set
}

// Atoms returns the atom names occurring in f, sorted.
func Atoms(f Formula) []string {
	set := AtomSet(f)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type atom string

// Atom returns the formula consisting of the single named atom.
func Atom(name string) Formula { return atom(name) }

func (a atom) Eval(assignment map[string]bool) bool { return assignment[string(a)] }
func (a atom) String() string                       { return string(a) }
func (a atom) precedence() int                      { return precAtom }

func (a atom) collectAtoms(set map[string]struct{}) {
	set[string(a)] = struct{}{}
}

type not struct {
	operand Formula
}

// Not negates the given formula.
func Not(f Formula) Formula { return not{f} }

func (n not) Eval(assignment map[string]bool) bool { return !n.operand.Eval(assignment) }
func (n not) precedence() int                      { return precNot }

func (n not) String() string {
	return "NOT " + renderChild(n.operand, precNot)
}

func (n not) collectAtoms(set map[string]struct{}) {
	n.operand.collectAtoms(set)
}

type binOp int

const (
	opAnd binOp = iota
	opOr
	opXor
	opImplies
	opIff
)

type binary struct {
	op          binOp
	left, right Formula
}

// And is the conjunction of two formulas.
func And(left, right Formula) Formula { return binary{opAnd, left, right} }

// Or is the disjunction of two formulas.
func Or(left, right Formula) Formula { return binary{opOr, left, right} }

// Xor is true iff exactly one of the two formulas is true.
func Xor(left, right Formula) Formula { return binary{opXor, left, right} }

// Implies is the material implication: false only when left holds and
// right does not.
func Implies(left, right Formula) Formula { return binary{opImplies, left, right} }

// Iff is the biconditional: true iff both formulas have the same value.
func Iff(left, right Formula) Formula { return binary{opIff, left, right} }

func (b binary) Eval(assignment map[string]bool) bool {
	left := b.left.Eval(assignment)
	right := b.right.Eval(assignment)
	switch b.op {
	case opAnd:
		return left && right
	case opOr:
		return left || right
	case opXor:
		return left != right
	case opImplies:
		return !left || right
	default: // opIff
		return left == right
	}
}

func (b binary) precedence() int {
	switch b.op {
	case opAnd:
		return precAnd
	case opOr:
		return precOr
	case opXor:
		return precXor
	case opImplies:
		return precImplies
	default: // opIff
		return precIff
	}
}

func (b binary) String() string {
	var op string
	switch b.op {
	case opAnd:
		op = " AND "
	case opOr:
		op = " OR "
	case opXor:
		op = " XOR "
	case opImplies:
		op = " -> "
	default: // opIff
		op = " <-> "
	}
	prec := b.precedence()
	return renderChild(b.left, prec) + op + renderChild(b.right, prec)
}

func (b binary) collectAtoms(set map[string]struct{}) {
	b.left.collectAtoms(set)
	b.right.collectAtoms(set)
}

func renderChild(child Formula, parentPrec int) string {
	if child.precedence() < parentPrec {
		return "(" + child.String() + ")"
	}
	return child.String()
}
