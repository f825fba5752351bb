package inference

import (
	"fmt"

	"github.com/propkit/propkit/logic"
)

// GuardStrategy controls how the backward chainer scopes its cycle guard.
type GuardStrategy int

const (
	// GuardPerPath bars a goal only while it is on the current recursion
	// path; independent branches may prove the same atom again. This is
	// the logically correct scoping and the default.
	GuardPerPath GuardStrategy = iota

	// GuardShared keeps every visited goal barred for the rest of the
	// whole search, across sibling premises and alternative rules. An
	// atom that legitimately recurs on two independent branches then
	// fails on the second one, which can reject provable goals.
	GuardShared
)

// A ProofNode is one goal in a proof tree. RuleID is set iff the goal
// succeeded via a rule, in which case Premises holds one child per premise
// atom of that rule. Failure to prove is a normal negative result, not an
// error: the node simply carries Succeeded=false and a message.
type ProofNode struct {
	Goal      string       `json:"goal"`
	RuleID    string       `json:"ruleId,omitempty"`
	Premises  []*ProofNode `json:"premises,omitempty"`
	Succeeded bool         `json:"succeeded"`
	Message   string       `json:"message"`
}

// BackwardChain attempts to prove the goal atom from the facts and rules,
// using the default per-path cycle guard.
func BackwardChain(goal string, facts FactSet, rules []Rule) *ProofNode {
	return BackwardChainGuard(goal, facts, rules, GuardPerPath)
}

// BackwardChainGuard is BackwardChain with an explicit guard strategy.
//
// A goal already in the facts succeeds immediately. Otherwise the rules
// whose conclusion mentions the goal are tried in rule-set order; for each,
// every premise atom (sorted by name) is proved recursively. The first rule
// whose premises all succeed wins and remaining rules are not tried; a
// rule's partial attempt is discarded when any premise fails.
func BackwardChainGuard(goal string, facts FactSet, rules []Rule, guard GuardStrategy) *ProofNode {
	p := &prover{facts: facts, rules: rules, guard: guard, visited: make(map[string]struct{})}
	return p.prove(goal)
}

type prover struct {
	facts   FactSet
	rules   []Rule
	guard   GuardStrategy
	visited map[string]struct{}
}

func (p *prover) prove(goal string) *ProofNode {
	if p.facts.Has(goal) {
		return &ProofNode{Goal: goal, Succeeded: true, Message: "Given as a fact."}
	}
	if _, ok := p.visited[goal]; ok {
		return &ProofNode{Goal: goal, Message: "Cycle detected while proving this goal."}
	}
	p.visited[goal] = struct{}{}
	if p.guard == GuardPerPath {
		defer delete(p.visited, goal)
	}

	var applicable []Rule
	for _, rule := range p.rules {
		if _, ok := logic.AtomSet(rule.Conclusion)[goal]; ok {
			applicable = append(applicable, rule)
		}
	}
	if len(applicable) == 0 {
		return &ProofNode{Goal: goal, Message: "No rules conclude this goal."}
	}

	for _, rule := range applicable {
		var children []*ProofNode
		allOK := true
		for _, atom := range logic.Atoms(rule.Premise) {
			child := p.prove(atom)
			children = append(children, child)
			if !child.Succeeded {
				allOK = false
			}
		}
		if allOK {
			return &ProofNode{
				Goal:      goal,
				RuleID:    rule.ID,
				Premises:  children,
				Succeeded: true,
				Message:   fmt.Sprintf("Proved %s using rule %s.", goal, rule.ID),
			}
		}
	}

	return &ProofNode{Goal: goal, Message: "All applicable rules failed to prove this goal."}
}
