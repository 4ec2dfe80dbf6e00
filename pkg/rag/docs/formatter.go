package docs

import (
	"fmt"
	"regexp"
	"strings"

	"ironlady-ai-be/pkg/store"
)

var ordinalPrefix = regexp.MustCompile(`^\d+\.\s*`)

// CleanFilename strips the known document extensions and a leading
// "<digits>. " ordinal prefix from a source file name.
func CleanFilename(sourceFile string) string {
	name := sourceFile
	for _, ext := range []string{".docx", ".pdf", ".txt"} {
		name = strings.ReplaceAll(name, ext, "")
	}
	name = ordinalPrefix.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// Format renders retrieved chunks into one context block. Each chunk gets a
// bracketed metadata header when any header field is present; chunks are
// joined with a horizontal-rule separator.
func Format(documents []store.Document) string {
	formatted := make([]string, 0, len(documents))

	for _, doc := range documents {
		var headerParts []string

		if sourceFile, ok := doc.Meta(store.MetaSourceFile); ok {
			headerParts = append(headerParts, "Source: "+CleanFilename(sourceFile))
		}

		if parentFolder, ok := doc.Meta(store.MetaParentFolder); ok && parentFolder != store.DefaultIngestionBucket {
			headerParts = append(headerParts, "Category: "+parentFolder)
		}

		if sessionNum, ok := doc.SessionNumber(); ok {
			if sessionTitle, ok := doc.Meta(store.MetaSessionTitle); ok {
				headerParts = append(headerParts, fmt.Sprintf("Session %d: %s", sessionNum, sessionTitle))
			} else {
				headerParts = append(headerParts, fmt.Sprintf("Session %d", sessionNum))
			}
		}

		if facilitator, ok := doc.Meta(store.MetaFacilitator); ok {
			headerParts = append(headerParts, "Facilitator: "+facilitator)
		}

		if len(headerParts) > 0 {
			header := "[" + strings.Join(headerParts, " | ") + "]"
			formatted = append(formatted, header+"\n"+doc.Content)
		} else {
			formatted = append(formatted, doc.Content)
		}
	}

	return strings.Join(formatted, "\n\n---\n\n")
}

// folderVideoIndicators flag filenames that point at recorded content when
// the chunk lives under a named folder; generalVideoIndicators is the
// narrower set used for uncategorized content.
var (
	folderVideoIndicators  = []string{"video", "sawaal", "showcase", "connect", "revision"}
	generalVideoIndicators = []string{"video", "sawaal", "showcase"}
)

func hasVideoIndicator(sourceFile string, indicators []string) bool {
	lower := strings.ToLower(sourceFile)
	for _, kw := range indicators {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// PrimaryReference derives the single citation sentence from the
// top-ranked retrieved document. Returns "" when there is nothing to cite.
func PrimaryReference(documents []store.Document) string {
	if len(documents) == 0 {
		return ""
	}

	doc := documents[0]
	sourceFile, _ := doc.Meta(store.MetaSourceFile)
	cleanName := CleanFilename(sourceFile)
	parentFolder, hasFolder := doc.Meta(store.MetaParentFolder)

	if sessionNum, ok := doc.SessionNumber(); ok {
		ref := fmt.Sprintf("For more details, refer to **Session %d", sessionNum)
		if facilitator, ok := doc.Meta(store.MetaFacilitator); ok {
			ref += fmt.Sprintf(" (Facilitator: %s)", facilitator)
		}
		return ref + "** videos and documentation (PPT/PDF)."
	}

	if hasFolder && parentFolder != store.DefaultIngestionBucket {
		if hasVideoIndicator(sourceFile, folderVideoIndicators) {
			return fmt.Sprintf("For more details, visit **%s** video.", cleanName)
		}
		return fmt.Sprintf("For more details, refer to **%s - %s**.", parentFolder, cleanName)
	}

	if hasVideoIndicator(sourceFile, generalVideoIndicators) {
		return fmt.Sprintf("For more details, visit **%s** video.", cleanName)
	}
	return fmt.Sprintf("For more details, refer to **%s**.", cleanName)
}
