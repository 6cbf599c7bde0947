package bible

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_ChapterOrderAndPartition(t *testing.T) {
	lib := NewLibrary("./testdata")
	book, verses, err := lib.Load(context.Background(), "kjv", "genesis")
	require.NoError(t, err)

	compiled := Compile(book, verses)

	require.Len(t, compiled, len(book.Chapters))
	for i, ch := range book.Chapters {
		// Chapter order follows the book record, and each chapter holds
		// exactly the verses declared for it.
		assert.Equal(t, ch.Number, compiled[i].Number)
		assert.Len(t, compiled[i].Verses, len(ch.Verses))
		for _, v := range compiled[i].Verses {
			assert.Equal(t, ch.Number, v.Chapter)
		}
	}
}

func TestCompile_GenesisOneOne(t *testing.T) {
	lib := NewLibrary("./testdata")
	book, verses, err := lib.Load(context.Background(), "kjv", "genesis")
	require.NoError(t, err)

	compiled := Compile(book, verses)

	first := FindChapter(compiled, 1)
	require.NotNil(t, first)
	v := first.FindVerse(1)
	require.NotNil(t, v)
	assert.Equal(t, "In the beginning God created the heaven and the earth.", v.Text)
	assert.Equal(t, 1, v.Paragraph)
	assert.Equal(t, "kjv_genesis_1_1", v.ID)
}

func TestCompile_NilBook(t *testing.T) {
	assert.Nil(t, Compile(nil, nil))
}

func TestFindChapter_Missing(t *testing.T) {
	compiled := []CompiledChapter{{Number: 1}, {Number: 2}}
	assert.Nil(t, FindChapter(compiled, 3))
	require.NotNil(t, FindChapter(compiled, 2))
}
