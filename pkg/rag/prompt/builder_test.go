package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	messages := Build(
		"[Source: Delivery Model]\n4T framework text",
		"USER PROFILE DETECTED: DOCTOR",
		"No previous conversation.",
		"What is 4T management?",
	)

	require.Len(t, messages, 2)

	assert.Equal(t, "system", messages[0].Role)
	assert.Contains(t, messages[0].Content, "Answer ONLY based on the provided context")
	assert.Contains(t, messages[0].Content, "DO NOT add references")

	assert.Equal(t, "user", messages[1].Role)
	assert.Contains(t, messages[1].Content, "4T framework text")
	assert.Contains(t, messages[1].Content, "USER PROFILE DETECTED: DOCTOR")
	assert.Contains(t, messages[1].Content, "No previous conversation.")
	assert.Contains(t, messages[1].Content, "Current Question: What is 4T management?")
}
