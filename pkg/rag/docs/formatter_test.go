package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ironlady-ai-be/pkg/store"
)

func TestCleanFilename(t *testing.T) {
	assert.Equal(t, "Leadership Basics", CleanFilename("12. Leadership Basics.pdf"))
	assert.Equal(t, "Session Notes", CleanFilename("Session Notes.docx"))
	assert.Equal(t, "Capability Matrix", CleanFilename("3.  Capability Matrix.txt"))
	assert.Equal(t, "README", CleanFilename("README"))
}

func TestFormatBuildsBracketedHeaders(t *testing.T) {
	documents := []store.Document{
		{
			Content: "The 4T framework covers Target, Time, Team, Theme.",
			Metadata: map[string]interface{}{
				store.MetaSourceFile:    "4. Delivery Model.pdf",
				store.MetaParentFolder:  "frameworks",
				store.MetaSessionNumber: float64(4),
				store.MetaSessionTitle:  "Delivery Model",
				store.MetaFacilitator:   "Rajesh",
			},
		},
		{
			Content: "Delta 2 goals stretch beyond the job description.",
			Metadata: map[string]interface{}{
				store.MetaSourceFile:   "7. Goal Setting.docx",
				store.MetaParentFolder: store.DefaultIngestionBucket,
			},
		},
	}

	out := Format(documents)
	assert.Contains(t, out, "[Source: Delivery Model | Category: frameworks | Session 4: Delivery Model | Facilitator: Rajesh]\nThe 4T framework")
	// default ingestion bucket never appears as a category
	assert.Contains(t, out, "[Source: Goal Setting]\nDelta 2 goals")
	assert.Contains(t, out, "\n\n---\n\n")
}

func TestFormatHeaderlessDocumentIsBare(t *testing.T) {
	out := Format([]store.Document{{Content: "orphan chunk"}})
	assert.Equal(t, "orphan chunk", out)
}

func TestPrimaryReferenceSessionKind(t *testing.T) {
	ref := PrimaryReference([]store.Document{{
		Content: "x",
		Metadata: map[string]interface{}{
			store.MetaSourceFile:    "3. Bell Curve.pdf",
			store.MetaSessionNumber: float64(3),
		},
	}})
	assert.Equal(t, "For more details, refer to **Session 3** videos and documentation (PPT/PDF).", ref)
}

func TestPrimaryReferenceSessionKindWithFacilitator(t *testing.T) {
	ref := PrimaryReference([]store.Document{{
		Content: "x",
		Metadata: map[string]interface{}{
			store.MetaSourceFile:    "3. Bell Curve.pdf",
			store.MetaSessionNumber: 3,
			store.MetaFacilitator:   "Suvarna",
		},
	}})
	assert.Equal(t, "For more details, refer to **Session 3 (Facilitator: Suvarna)** videos and documentation (PPT/PDF).", ref)
}

func TestPrimaryReferenceFolderKind(t *testing.T) {
	video := PrimaryReference([]store.Document{{
		Metadata: map[string]interface{}{
			store.MetaSourceFile:   "Sawaal Jawaab Week 2.docx",
			store.MetaParentFolder: "community",
		},
	}})
	assert.Equal(t, "For more details, visit **Sawaal Jawaab Week 2** video.", video)

	document := PrimaryReference([]store.Document{{
		Metadata: map[string]interface{}{
			store.MetaSourceFile:   "2. War Strategies.pdf",
			store.MetaParentFolder: "playbooks",
		},
	}})
	assert.Equal(t, "For more details, refer to **playbooks - War Strategies**.", document)
}

func TestPrimaryReferenceGeneralKind(t *testing.T) {
	ref := PrimaryReference([]store.Document{{
		Metadata: map[string]interface{}{
			store.MetaSourceFile:   "Leadership Basics.pdf",
			store.MetaParentFolder: store.DefaultIngestionBucket,
		},
	}})
	assert.Equal(t, "For more details, refer to **Leadership Basics**.", ref)

	// "revision" only counts as a video indicator inside a named folder
	general := PrimaryReference([]store.Document{{
		Metadata: map[string]interface{}{
			store.MetaSourceFile: "Revision Notes.pdf",
		},
	}})
	assert.Equal(t, "For more details, refer to **Revision Notes**.", general)
}

func TestPrimaryReferenceEmpty(t *testing.T) {
	assert.Equal(t, "", PrimaryReference(nil))
}
