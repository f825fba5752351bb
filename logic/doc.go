// Package logic defines propositional formulas over named atoms, along with
// their textual grammar.
//
// A formula is built either programmatically, with the Atom, Not, And, Or,
// Xor, Implies and Iff constructors, or by parsing text:
//
//	f, err := logic.Parse("Fever AND (Cough OR SoreThroat) -> Flu")
//
// Formulas are immutable value objects. They evaluate against an assignment
// mapping atom names to booleans; an atom missing from the assignment is
// false. String renders a formula back to canonical text, parenthesizing
// only where precedence demands it, so parsing the result yields a
// structurally equal tree.
//
// The grammar, from loosest to tightest binding:
//
//	<->  (IFF)
//	->   (IMPLIES)
//	OR   |
//	XOR
//	AND  &
//	NOT  ~   (unary)
//
// All binary operators associate to the left. Word operators are
// case-insensitive; identifiers are runs of [A-Za-z0-9_] and keep their
// original case.
package logic
