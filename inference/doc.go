// Package inference implements rule-based reasoning over propositional
// facts: data-driven forward chaining to a fixpoint, goal-driven backward
// chaining producing an explicit proof tree, and detection of direct
// contradictions in a fact set.
//
// A fact is an atom name asserted to be true. A fact of the form
// "NOT <name>" asserts the negation of <name>; this is a flat naming
// convention used only by contradiction detection, not an AST-level
// negation.
package inference
