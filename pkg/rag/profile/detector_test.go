package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectKnownProfiles(t *testing.T) {
	tests := []struct {
		name        string
		question    string
		wantProfile string
		wantKeyword string
	}{
		{"doctor by keyword", "I am a doctor, how can I apply 4T principles?", "doctor", "doctor"},
		{"hr by abbreviation", "As an HR leader, how do I use the capability matrix?", "hr_leader", "hr"},
		{"entrepreneur", "I'm an entrepreneur starting a business, what is 4T management?", "entrepreneur", "entrepreneur"},
		{"executive", "As a VP, how do I handle stakeholder management?", "corporate_executive", "vp"},
		{"finance", "I work as a banker, what about risk?", "finance", "banker"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			det := Detect(tc.question)
			require.NotNil(t, det)
			assert.Equal(t, tc.wantProfile, det.Profile)
			assert.Equal(t, tc.wantKeyword, det.DetectedKeyword)
			assert.Equal(t, ConfidenceHigh, det.Confidence)
		})
	}
}

func TestDetectDeclarationOrderBreaksTies(t *testing.T) {
	// "hr director" matches both hr_leader ("hr") and corporate_executive
	// ("director"); hr_leader is declared earlier so it wins.
	det := Detect("I am the HR director for clinical staff")
	require.NotNil(t, det)
	assert.Equal(t, "hr_leader", det.Profile)
}

func TestDetectCustomProfile(t *testing.T) {
	det := Detect("I am a marine biologist, what is the 11-point framework?")
	require.NotNil(t, det)
	assert.Equal(t, Custom, det.Profile)
	assert.Equal(t, "marine biologist", det.CustomProfile)
	assert.Equal(t, ConfidenceMedium, det.Confidence)
}

func TestDetectCustomProfileTruncatesQuestionWords(t *testing.T) {
	det := Detect("i'm a pastry chef how do i lead my kitchen")
	require.NotNil(t, det)
	assert.Equal(t, Custom, det.Profile)
	assert.Equal(t, "pastry chef", det.CustomProfile)
}

func TestDetectCustomProfileRejectsLongPhrases(t *testing.T) {
	det := Detect("i am a very senior regional operations supervisor person")
	assert.Nil(t, det)
}

func TestDetectNoMatch(t *testing.T) {
	assert.Nil(t, Detect("What is the 11-point framework?"))
	assert.Nil(t, Detect(""))
}

func TestContextFor(t *testing.T) {
	assert.Contains(t, ContextFor("doctor", ""), "Healthcare professionals")
	assert.Contains(t, ContextFor("finance", ""), "Financial planning and analysis")

	custom := ContextFor(Custom, "marine biologist")
	assert.Contains(t, custom, "Marine Biologist professional focused on")

	assert.Equal(t, "Professional focused on leadership and growth", ContextFor("astronaut", ""))
}

func TestPromptBlock(t *testing.T) {
	assert.Equal(t,
		"USER PROFILE: General professional\nProvide general examples from the context.",
		PromptBlock(nil))

	named := PromptBlock(&Detection{Profile: "hr_leader", Confidence: ConfidenceHigh})
	assert.Contains(t, named, "USER PROFILE DETECTED: HR LEADER")

	custom := PromptBlock(&Detection{Profile: Custom, CustomProfile: "pastry chef", Confidence: ConfidenceMedium})
	assert.Contains(t, custom, "USER PROFILE DETECTED: PASTRY CHEF")
	assert.Contains(t, custom, "If the profession is unfamiliar")
}
