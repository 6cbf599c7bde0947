package studygroups

import (
	"time"

	"github.com/mrlokans/berean/internal/entities"
)

// DemoProvider serves a fixed set of peer annotations for a Genesis study
// group, for instances that are not connected to a group backend.
type DemoProvider struct {
	records []PeerAnnotation
}

// NewDemoProvider creates a provider seeded with the demo study group.
func NewDemoProvider() *DemoProvider {
	return &DemoProvider{records: demoRecords()}
}

// ListPeerAnnotations implements Provider.
func (p *DemoProvider) ListPeerAnnotations(book string, chapter, verse *int) ([]PeerAnnotation, error) {
	return FilterByScope(p.records, book, chapter, verse), nil
}

func demoRecords() []PeerAnnotation {
	ts := func(value string) time.Time {
		t, _ := time.Parse(time.RFC3339, value)
		return t
	}

	sarah := "sarah.johnson@example.com"
	michael := "michael.chen@example.com"

	return []PeerAnnotation{
		// Verse-anchored notes
		{
			ID: "note_sarah_1", UserEmail: sarah, UserName: "Sarah Johnson",
			Kind: entities.AnnotationKindNote,
			Text: "I love how this verse establishes God as the creator from the very beginning. It sets the foundation for everything that follows.",
			Book: "genesis", Chapter: 1, Verse: 1,
			CreatedAt: ts("2024-01-16T08:30:00Z"),
		},
		{
			ID: "note_michael_1", UserEmail: michael, UserName: "Michael Chen",
			Kind: entities.AnnotationKindNote,
			Text: "The phrase \"Let there be light\" is so powerful. It shows God's authority - He simply speaks and it happens.",
			Book: "genesis", Chapter: 1, Verse: 3,
			CreatedAt: ts("2024-01-21T16:45:00Z"),
		},
		{
			ID: "note_michael_2", UserEmail: michael, UserName: "Michael Chen",
			Kind: entities.AnnotationKindNote,
			Text: "What does it mean to be made in God's image? This is such a profound concept that affects how we view ourselves and others.",
			Book: "genesis", Chapter: 1, Verse: 26,
			CreatedAt: ts("2024-01-21T18:00:00Z"),
		},
		// Chapter-anchored notes
		{
			ID: "note_sarah_2", UserEmail: sarah, UserName: "Sarah Johnson",
			Kind: entities.AnnotationKindNote,
			Text: "The creation story shows God's intentionality and order. Each day builds upon the previous one, showing a divine plan.",
			Book: "genesis", Chapter: 1,
			CreatedAt: ts("2024-01-16T09:15:00Z"),
		},
		{
			ID: "note_michael_3", UserEmail: michael, UserName: "Michael Chen",
			Kind: entities.AnnotationKindNote,
			Text: "I find it interesting that God created light before the sun, moon, and stars. This suggests that God Himself is the source of light.",
			Book: "genesis", Chapter: 1,
			CreatedAt: ts("2024-01-21T17:20:00Z"),
		},
		// Book-anchored notes
		{
			ID: "note_sarah_3", UserEmail: sarah, UserName: "Sarah Johnson",
			Kind: entities.AnnotationKindNote,
			Text: "Genesis is such a foundational book. It sets up everything we need to understand about God, humanity, and our relationship with Him.",
			Book: "genesis",
			CreatedAt: ts("2024-01-16T12:00:00Z"),
		},
		{
			ID: "note_michael_4", UserEmail: michael, UserName: "Michael Chen",
			Kind: entities.AnnotationKindNote,
			Text: "The book of Genesis answers the fundamental questions: Where did we come from? Why are we here? What went wrong?",
			Book: "genesis",
			CreatedAt: ts("2024-01-21T20:00:00Z"),
		},
		// Verse-anchored questions
		{
			ID: "question_sarah_1", UserEmail: sarah, UserName: "Sarah Johnson",
			Kind: entities.AnnotationKindQuestion,
			Text: "What does it mean that the earth was \"formless and empty\"? Was there something there before God started creating?",
			Book: "genesis", Chapter: 1, Verse: 1,
			CreatedAt: ts("2024-01-16T10:00:00Z"),
		},
		{
			ID: "question_michael_1", UserEmail: michael, UserName: "Michael Chen",
			Kind: entities.AnnotationKindQuestion,
			Text: "What does it mean to be made in God's image? How does this affect how we should treat each other?",
			Book: "genesis", Chapter: 1, Verse: 26,
			CreatedAt: ts("2024-01-21T18:00:00Z"),
		},
		// Chapter-anchored questions
		{
			ID: "question_sarah_2", UserEmail: sarah, UserName: "Sarah Johnson",
			Kind: entities.AnnotationKindQuestion,
			Text: "Why did God rest on the seventh day? Does God need rest, or is there a deeper meaning here?",
			Book: "genesis", Chapter: 1,
			CreatedAt: ts("2024-01-16T11:30:00Z"),
		},
		{
			ID: "question_michael_2", UserEmail: michael, UserName: "Michael Chen",
			Kind: entities.AnnotationKindQuestion,
			Text: "How do we reconcile the creation account with scientific theories about the age of the earth?",
			Book: "genesis", Chapter: 1,
			CreatedAt: ts("2024-01-21T19:15:00Z"),
		},
		// Book-anchored questions
		{
			ID: "question_sarah_3", UserEmail: sarah, UserName: "Sarah Johnson",
			Kind: entities.AnnotationKindQuestion,
			Text: "What are the main themes we should look for as we study Genesis?",
			Book: "genesis",
			CreatedAt: ts("2024-01-16T13:00:00Z"),
		},
		{
			ID: "question_michael_3", UserEmail: michael, UserName: "Michael Chen",
			Kind: entities.AnnotationKindQuestion,
			Text: "How does Genesis prepare us for the rest of the Bible? What patterns are established here?",
			Book: "genesis",
			CreatedAt: ts("2024-01-21T21:00:00Z"),
		},
	}
}
