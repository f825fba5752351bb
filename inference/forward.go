package inference

import (
	"fmt"
	"sort"
	"strings"

	"github.com/propkit/propkit/logic"
)

// A Step records one successful rule firing during forward chaining.
type Step struct {
	Step        int      `json:"step"`
	RuleID      string   `json:"ruleId"`
	Inferred    []string `json:"inferred"`
	Explanation string   `json:"explanation"`
}

// A Result is the read-only outcome of one forward-chaining run.
type Result struct {
	FinalFacts     FactSet
	Steps          []Step
	Contradictions []Contradiction
}

// ForwardChain runs rules over the initial facts until a full pass fires
// nothing (fixpoint). Within a pass, rules fire in their given order; a
// rule fires when its premise holds under the current facts and its
// conclusion can newly satisfy at least one atom. The fact set only grows
// and is bounded by the atoms of the rule set, so termination is
// guaranteed. The initial set is not modified.
//
// After the fixpoint, the final facts are scanned for direct
// contradictions ("X" together with "NOT X").
func ForwardChain(initialFacts FactSet, rules []Rule) Result {
	facts := initialFacts.Clone()
	var steps []Step
	stepCounter := 1

	for {
		firedAny := false
		for _, rule := range rules {
			premiseAtoms := logic.Atoms(rule.Premise)
			assignment := make(map[string]bool, len(premiseAtoms))
			for _, a := range premiseAtoms {
				assignment[a] = facts.Has(a)
			}
			if !rule.Premise.Eval(assignment) {
				continue
			}
			newAtoms := newlySatisfiable(rule.Conclusion, assignment, facts)
			if len(newAtoms) == 0 {
				continue
			}
			firedAny = true
			for _, a := range newAtoms {
				facts.Add(a)
			}
			explanation := fmt.Sprintf(
				"Step %d: %s fired because %s are True -> inferred %s.",
				stepCounter, rule.ID,
				strings.Join(premiseAtoms, " and "),
				strings.Join(newAtoms, ", "),
			)
			steps = append(steps, Step{
				Step:        stepCounter,
				RuleID:      rule.ID,
				Inferred:    newAtoms,
				Explanation: explanation,
			})
			stepCounter++
		}
		if !firedAny {
			break
		}
	}

	return Result{
		FinalFacts:     facts,
		Steps:          steps,
		Contradictions: DetectContradictions(facts),
	}
}

// newlySatisfiable returns the sorted conclusion atoms, not yet known as
// facts, whose assertion makes the conclusion true. The base assignment is
// the premise-restricted one; conclusion-only atoms default to false.
func newlySatisfiable(conclusion logic.Formula, assignment map[string]bool, facts FactSet) []string {
	var atoms []string
	for a := range logic.AtomSet(conclusion) {
		if facts.Has(a) {
			continue
		}
		test := make(map[string]bool, len(assignment)+1)
		for k, v := range assignment {
			test[k] = v
		}
		test[a] = true
		if conclusion.Eval(test) {
			atoms = append(atoms, a)
		}
	}
	sort.Strings(atoms)
	return atoms
}
