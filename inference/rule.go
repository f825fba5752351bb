package inference

import (
	"fmt"
	"sort"

	"github.com/propkit/propkit/logic"
)

// A Rule derives its conclusion formula whenever its premise formula holds.
// Rules are immutable after construction.
type Rule struct {
	ID          string
	Premise     logic.Formula
	Conclusion  logic.Formula
	Description string
}

// NewRule parses the premise and conclusion texts into a Rule.
func NewRule(id, premise, conclusion, description string) (Rule, error) {
	p, err := logic.Parse(premise)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %s: invalid premise: %w", id, err)
	}
	c, err := logic.Parse(conclusion)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %s: invalid conclusion: %w", id, err)
	}
	return Rule{ID: id, Premise: p, Conclusion: c, Description: description}, nil
}

// ConclusionAtoms returns the sorted atom names of the rule's conclusion.
func (r Rule) ConclusionAtoms() []string {
	return logic.Atoms(r.Conclusion)
}

// A FactSet is the set of atom names currently asserted to be true.
type FactSet map[string]struct{}

// NewFactSet builds a fact set from the given names.
func NewFactSet(names ...string) FactSet {
	s := make(FactSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether the named fact is in the set.
func (s FactSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add asserts the named fact.
func (s FactSet) Add(name string) {
	s[name] = struct{}{}
}

// Clone returns an independent copy of the set.
func (s FactSet) Clone() FactSet {
	c := make(FactSet, len(s))
	for name := range s {
		c[name] = struct{}{}
	}
	return c
}

// Names returns the facts in sorted order.
func (s FactSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
