package inference

import (
	"fmt"
	"sort"
	"strings"
)

// NegationPrefix marks a fact as the negation of the atom that follows it.
// "NOT Flu" asserts that Flu is false.
const NegationPrefix = "NOT "

// A Contradiction reports an atom asserted both positively and through its
// negation-marked form.
type Contradiction struct {
	Atom    string `json:"atom"`
	Message string `json:"message"`
}

// DetectContradictions scans a fact set for atoms X where both "X" and
// "NOT X" are present, sorted by atom name. Only bare fact strings are
// considered; contradictions implied by unevaluated formulas are not
// detected.
func DetectContradictions(facts FactSet) []Contradiction {
	positives := make(map[string]struct{})
	negatives := make(map[string]struct{})
	for fact := range facts {
		if strings.HasPrefix(fact, NegationPrefix) {
			negatives[fact[len(NegationPrefix):]] = struct{}{}
		} else {
			positives[fact] = struct{}{}
		}
	}
	var conflicts []string
	for atom := range positives {
		if _, ok := negatives[atom]; ok {
			conflicts = append(conflicts, atom)
		}
	}
	sort.Strings(conflicts)

	result := make([]Contradiction, len(conflicts))
	for i, atom := range conflicts {
		result[i] = Contradiction{
			Atom:    atom,
			Message: fmt.Sprintf("Contradiction between %s and NOT %s", atom, atom),
		}
	}
	return result
}
