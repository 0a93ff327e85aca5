package diagnostics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsInstructions_SectionsInOrder(t *testing.T) {
	headers := []string{
		"1. Brief summary of the issue",
		"2. 3-5 most likely causes/solutions",
		"3. 3-7 steps to properly diagnose the issue",
		"4. Potential parts needed for the most likely fix",
	}

	last := -1
	for _, h := range headers {
		idx := strings.Index(DiagnosticsInstructions, h)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", h)
		assert.Greater(t, idx, last, "section %q out of order", h)
		last = idx
	}
	assert.Contains(t, DiagnosticsInstructions, "ALWAYS respond in **exactly** this structure and order")
}

func TestDiagnosticsInstructions_Prohibitions(t *testing.T) {
	for _, rule := range []string{
		"Do NOT give prices or cost estimates.",
		"Do NOT tell the user to ignore warning lights.",
		"do NOT invent specific technical data you don't know",
		"exact part numbers",
		"Use generic part names, not brand-specific SKUs.",
	} {
		assert.Contains(t, DiagnosticsInstructions, rule)
	}
}

func TestDiagnosticsInstructions_Escalation(t *testing.T) {
	// the rule spans a line break in the prompt
	flat := strings.Join(strings.Fields(DiagnosticsInstructions), " ")

	assert.Contains(t, flat,
		"If the problem involves brakes, steering, fuel leaks, or anything that could cause a breakdown or fire, explicitly recommend professional inspection.")
}

func TestInstructionsVersionIsSet(t *testing.T) {
	assert.NotEmpty(t, InstructionsVersion)
}
