package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackwardChainGoalIsFact(t *testing.T) {
	proof := BackwardChain("A", NewFactSet("A"), nil)
	assert.True(t, proof.Succeeded)
	assert.Empty(t, proof.RuleID)
	assert.Empty(t, proof.Premises)
	assert.Equal(t, "Given as a fact.", proof.Message)
}

func TestBackwardChainProvesGoal(t *testing.T) {
	rules := []Rule{mustRule(t, "R1", "A AND B", "C", "If A and B then C")}
	proof := BackwardChain("C", NewFactSet("A", "B"), rules)

	assert.True(t, proof.Succeeded)
	assert.Equal(t, "R1", proof.RuleID)
	assert.Equal(t, "Proved C using rule R1.", proof.Message)
	require.Len(t, proof.Premises, 2)
	for _, child := range proof.Premises {
		assert.True(t, child.Succeeded)
		assert.Equal(t, "Given as a fact.", child.Message)
	}
}

// Premise sub-goals are proved in sorted atom order.
func TestBackwardChainPremiseOrder(t *testing.T) {
	rules := []Rule{mustRule(t, "R1", "B AND A", "C", "")}
	proof := BackwardChain("C", NewFactSet("A", "B"), rules)
	require.Len(t, proof.Premises, 2)
	assert.Equal(t, "A", proof.Premises[0].Goal)
	assert.Equal(t, "B", proof.Premises[1].Goal)
}

func TestBackwardChainNoApplicableRule(t *testing.T) {
	rules := []Rule{mustRule(t, "R1", "A", "B", "")}
	proof := BackwardChain("Z", NewFactSet(), rules)

	assert.False(t, proof.Succeeded)
	assert.Empty(t, proof.Premises)
	assert.Equal(t, "No rules conclude this goal.", proof.Message)
}

func TestBackwardChainChainedRules(t *testing.T) {
	rules := []Rule{
		mustRule(t, "R1", "A AND B", "C", ""),
		mustRule(t, "R2", "C", "D", ""),
	}
	proof := BackwardChain("D", NewFactSet("A", "B"), rules)

	assert.True(t, proof.Succeeded)
	assert.Equal(t, "R2", proof.RuleID)
	require.Len(t, proof.Premises, 1)
	sub := proof.Premises[0]
	assert.Equal(t, "C", sub.Goal)
	assert.Equal(t, "R1", sub.RuleID)
	require.Len(t, sub.Premises, 2)
}

// The first rule whose premises all hold wins; later rules are not tried.
func TestBackwardChainFirstRuleWins(t *testing.T) {
	rules := []Rule{
		mustRule(t, "R1", "A", "G", ""),
		mustRule(t, "R2", "B", "G", ""),
	}
	proof := BackwardChain("G", NewFactSet("A", "B"), rules)
	assert.True(t, proof.Succeeded)
	assert.Equal(t, "R1", proof.RuleID)
}

// A failed rule's partial attempt is discarded and the next rule is tried.
func TestBackwardChainFallsBackToNextRule(t *testing.T) {
	rules := []Rule{
		mustRule(t, "R1", "Missing", "G", ""),
		mustRule(t, "R2", "B", "G", ""),
	}
	proof := BackwardChain("G", NewFactSet("B"), rules)
	assert.True(t, proof.Succeeded)
	assert.Equal(t, "R2", proof.RuleID)
}

func TestBackwardChainAllRulesFail(t *testing.T) {
	rules := []Rule{mustRule(t, "R1", "A", "G", "")}
	proof := BackwardChain("G", NewFactSet(), rules)
	assert.False(t, proof.Succeeded)
	assert.Empty(t, proof.Premises)
	assert.Equal(t, "All applicable rules failed to prove this goal.", proof.Message)
}

// A self-referential rule terminates via the cycle guard instead of
// recursing forever.
func TestBackwardChainSelfReference(t *testing.T) {
	rules := []Rule{mustRule(t, "R1", "X", "X", "")}
	proof := BackwardChain("X", NewFactSet(), rules)
	assert.False(t, proof.Succeeded)
}

func TestBackwardChainMutualCycle(t *testing.T) {
	rules := []Rule{
		mustRule(t, "R1", "B", "A", ""),
		mustRule(t, "R2", "A", "B", ""),
	}
	proof := BackwardChain("A", NewFactSet(), rules)
	assert.False(t, proof.Succeeded)
}

// sharedGuardRules builds a rule set where the atom S must be proved on two
// independent branches: G needs Q and R, and both reduce to S, which is
// itself derived from the fact T.
func sharedGuardRules(t *testing.T) []Rule {
	return []Rule{
		mustRule(t, "R1", "Q AND R", "G", ""),
		mustRule(t, "R2", "S", "Q", ""),
		mustRule(t, "R3", "S", "R", ""),
		mustRule(t, "R4", "T", "S", ""),
	}
}

func TestBackwardChainPerPathGuardReprovesSharedPremise(t *testing.T) {
	proof := BackwardChainGuard("G", NewFactSet("T"), sharedGuardRules(t), GuardPerPath)
	assert.True(t, proof.Succeeded)
	assert.Equal(t, "R1", proof.RuleID)
}

// Under the shared guard, S stays barred after the Q branch finishes, so
// the R branch reports a cycle and the otherwise provable goal fails.
func TestBackwardChainSharedGuardBarsReprovedPremise(t *testing.T) {
	proof := BackwardChainGuard("G", NewFactSet("T"), sharedGuardRules(t), GuardShared)
	assert.False(t, proof.Succeeded)
}

func TestBackwardChainDefaultGuardIsPerPath(t *testing.T) {
	proof := BackwardChain("G", NewFactSet("T"), sharedGuardRules(t))
	assert.True(t, proof.Succeeded)
}
