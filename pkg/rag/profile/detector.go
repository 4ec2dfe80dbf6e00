package profile

import (
	"regexp"
	"strings"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)

// Custom is the profile name used when the asker self-identified with a
// profession outside the known table.
const Custom = "custom"

// Detection is the result of profile detection over a question.
type Detection struct {
	Profile         string
	CustomProfile   string
	Confidence      Confidence
	DetectedKeyword string
}

type profileEntry struct {
	Name     string
	Keywords []string
}

// profileTable maps each known profile to its trigger keywords. Declaration
// order is part of the contract: on ambiguous text the earliest-declared
// profile wins, so reordering entries changes detection results.
var profileTable = []profileEntry{
	{"doctor", []string{"doctor", "physician", "medical", "healthcare provider", "clinician", "surgeon", "dentist"}},
	{"hr_leader", []string{"hr", "human resources", "hr manager", "hr director", "chro", "people ops", "talent"}},
	{"entrepreneur", []string{"entrepreneur", "founder", "startup", "business owner", "ceo of startup", "starting business"}},
	{"corporate_executive", []string{"executive", "cxo", "vp", "vice president", "director", "senior leader", "c-suite"}},
	{"consultant", []string{"consultant", "consulting", "advisor", "advisory"}},
	{"engineer", []string{"engineer", "technical lead", "tech professional", "software", "it professional"}},
	{"lawyer", []string{"lawyer", "attorney", "legal", "advocate"}},
	{"educator", []string{"teacher", "professor", "educator", "academic", "principal"}},
	{"finance", []string{"finance", "accountant", "cfo", "financial", "banker"}},
}

var selfIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`i am (?:a|an) ([a-z\s]+)`),
	regexp.MustCompile(`as (?:a|an) ([a-z\s]+)`),
	regexp.MustCompile(`i'm (?:a|an) ([a-z\s]+)`),
	regexp.MustCompile(`working as (?:a|an) ([a-z\s]+)`),
}

var trailingQuestionWord = regexp.MustCompile(`\s+(?:how|what|where|when|why|can|do)`)

// Detect maps a free-text question to a professional profile. Known-table
// keyword matches carry high confidence; self-identified professions outside
// the table carry medium confidence. Returns nil when nothing matches.
func Detect(question string) *Detection {
	lower := strings.ToLower(question)

	for _, entry := range profileTable {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return &Detection{
					Profile:         entry.Name,
					Confidence:      ConfidenceHigh,
					DetectedKeyword: keyword,
				}
			}
		}
	}

	for _, pattern := range selfIDPatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		profession := strings.TrimSpace(match[1])
		profession = strings.TrimSpace(trailingQuestionWord.Split(profession, 2)[0])

		if profession != "" && len(strings.Fields(profession)) <= 3 {
			return &Detection{
				Profile:         Custom,
				CustomProfile:   profession,
				Confidence:      ConfidenceMedium,
				DetectedKeyword: profession,
			}
		}
	}

	return nil
}
