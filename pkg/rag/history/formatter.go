package history

import (
	"strings"

	"ironlady-ai-be/pkg/store"
)

const (
	// windowSize bounds how many prior turns are included in the prompt.
	windowSize = 10
	// answerCutoff is a hard character cut on each prior answer. Lossy on
	// purpose; the window is a summary, not a transcript.
	answerCutoff = 200

	emptyPlaceholder = "No previous conversation."
)

// Format renders the most recent turns as alternating User/Assistant lines
// for prompt inclusion.
func Format(turns []store.ConversationTurn) string {
	if len(turns) == 0 {
		return emptyPlaceholder
	}

	window := turns
	if len(window) > windowSize {
		window = window[len(window)-windowSize:]
	}

	lines := make([]string, 0, len(window)*2)
	for _, turn := range window {
		answer := turn.Answer
		if len(answer) > answerCutoff {
			answer = answer[:answerCutoff]
		}
		lines = append(lines, "User: "+turn.Question)
		lines = append(lines, "Assistant: "+answer+"...")
	}

	return strings.Join(lines, "\n")
}
