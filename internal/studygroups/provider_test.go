package studygroups

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/berean/internal/entities"
)

func intPtr(v int) *int { return &v }

func TestDemoProvider_VerseScope(t *testing.T) {
	p := NewDemoProvider()

	records, err := p.ListPeerAnnotations("genesis", intPtr(1), intPtr(1))
	require.NoError(t, err)

	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, 1, r.Chapter)
		assert.Equal(t, 1, r.Verse)
	}
}

func TestDemoProvider_ChapterScopeExcludesVerseRecords(t *testing.T) {
	p := NewDemoProvider()

	records, err := p.ListPeerAnnotations("genesis", intPtr(1), nil)
	require.NoError(t, err)

	require.NotEmpty(t, records)
	for _, r := range records {
		assert.Equal(t, 1, r.Chapter)
		assert.Zero(t, r.Verse, "chapter query must not return verse-anchored records")
	}
}

func TestDemoProvider_BookScopeReturnsEverything(t *testing.T) {
	p := NewDemoProvider()

	records, err := p.ListPeerAnnotations("genesis", nil, nil)
	require.NoError(t, err)

	// All demo records anchor to Genesis, across every scope.
	assert.Len(t, records, len(demoRecords()))

	kinds := map[entities.AnnotationKind]bool{}
	for _, r := range records {
		kinds[r.Kind] = true
	}
	assert.True(t, kinds[entities.AnnotationKindNote])
	assert.True(t, kinds[entities.AnnotationKindQuestion])
}

func TestDemoProvider_CaseInsensitiveBook(t *testing.T) {
	p := NewDemoProvider()

	records, err := p.ListPeerAnnotations("Genesis", nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, records)
}

func TestDemoProvider_OtherBookEmpty(t *testing.T) {
	p := NewDemoProvider()

	records, err := p.ListPeerAnnotations("exodus", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFilterByScope_EmptyBook(t *testing.T) {
	assert.Nil(t, FilterByScope(demoRecords(), "", nil, nil))
}
