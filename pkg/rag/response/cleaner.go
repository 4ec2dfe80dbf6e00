package response

import (
	"regexp"
	"strings"
)

// Models occasionally self-append a trailing reference section despite the
// prompt forbidding it. These patterns remove such sections wholesale, from
// the marker phrase to the end of the answer.
var boilerplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)📺?\s*Related Video Resources:.*$`),
	regexp.MustCompile(`(?is)📺?\s*For (?:more|further) details.*$`),
	regexp.MustCompile(`(?is)📚?\s*For more details.*$`),
}

var excessBlankLines = regexp.MustCompile(`\n\n\n+`)

// referenceKeywords mark a question as an explicit request for sourcing.
var referenceKeywords = []string{
	"source", "reference", "where can i find", "where is this from",
	"which session", "what video", "where to learn more", "more details",
	"show source", "cite", "citation", "what document", "which document",
}

// IsAskingForReferences reports whether the question explicitly asks for
// sources. Citation is opt-in: answers stay clean unless the user asked.
func IsAskingForReferences(question string) bool {
	lower := strings.ToLower(question)
	for _, keyword := range referenceKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// Clean strips model-generated reference boilerplate, appends the primary
// reference when (and only when) the question asked for sources, and
// normalizes blank lines. Stripping happens before the append so the
// citation itself is never stripped.
func Clean(rawAnswer, question, sourceRef string) string {
	answer := rawAnswer
	for _, pattern := range boilerplatePatterns {
		answer = strings.TrimSpace(pattern.ReplaceAllString(answer, ""))
	}

	if IsAskingForReferences(question) && sourceRef != "" {
		answer += "\n\n📚 " + sourceRef
	}

	return strings.TrimSpace(excessBlankLines.ReplaceAllString(answer, "\n\n"))
}
