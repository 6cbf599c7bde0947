package bible

// Compile joins a book's chapter list with its flat verse list into the
// nested chapter structure served to readers. Chapters come out in the order
// declared by the book record, which is authoritative; each chapter holds
// exactly the verses whose chapter number matches.
func Compile(book *BookRecord, verses []VerseRecord) []CompiledChapter {
	if book == nil {
		return nil
	}

	compiled := make([]CompiledChapter, 0, len(book.Chapters))
	for _, ch := range book.Chapters {
		chapter := CompiledChapter{
			Number:  ch.Number,
			Summary: ch.Summary,
			Verses:  make([]VerseRecord, 0, len(ch.Verses)),
		}
		for _, v := range verses {
			if v.Chapter == ch.Number {
				chapter.Verses = append(chapter.Verses, v)
			}
		}
		compiled = append(compiled, chapter)
	}
	return compiled
}

// FindChapter returns the compiled chapter with the given number, or nil.
func FindChapter(compiled []CompiledChapter, number int) *CompiledChapter {
	for i := range compiled {
		if compiled[i].Number == number {
			return &compiled[i]
		}
	}
	return nil
}
