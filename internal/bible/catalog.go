package bible

import "strings"

// Translations is the closed registry of supported translations. Adding a
// translation is a data change here plus a matching data directory; no code
// change is required anywhere else.
var Translations = []Translation{
	{ID: "kjv", Name: "King James Version", Abbreviation: "KJV"},
	{ID: "niv", Name: "New International Version", Abbreviation: "NIV"},
	{ID: "esv", Name: "English Standard Version", Abbreviation: "ESV"},
	{ID: "nasb", Name: "New American Standard Bible", Abbreviation: "NASB"},
	{ID: "nlt", Name: "New Living Translation", Abbreviation: "NLT"},
	{ID: "nkjv", Name: "New King James Version", Abbreviation: "NKJV"},
	{ID: "net", Name: "New English Translation", Abbreviation: "NET"},
	{ID: "web", Name: "World English Bible", Abbreviation: "WEB"},
	{ID: "akjv", Name: "American King James Version", Abbreviation: "AKJV"},
	{ID: "asv", Name: "American Standard Version", Abbreviation: "ASV"},
	{ID: "brg", Name: "Bible in Basic English", Abbreviation: "BRG"},
	{ID: "ehv", Name: "Evangelical Heritage Version", Abbreviation: "EHV"},
	{ID: "esvuk", Name: "English Standard Version (UK)", Abbreviation: "ESVUK"},
	{ID: "gnv", Name: "Geneva Bible", Abbreviation: "GNV"},
	{ID: "gw", Name: "God's Word", Abbreviation: "GW"},
	{ID: "isv", Name: "International Standard Version", Abbreviation: "ISV"},
	{ID: "jub", Name: "Jubilee Bible", Abbreviation: "JUB"},
	{ID: "kj21", Name: "21st Century King James Version", Abbreviation: "KJ21"},
	{ID: "leb", Name: "Lexham English Bible", Abbreviation: "LEB"},
	{ID: "mev", Name: "Modern English Version", Abbreviation: "MEV"},
	{ID: "nasb1995", Name: "New American Standard Bible (1995)", Abbreviation: "NASB1995"},
	{ID: "nivuk", Name: "New International Version (UK)", Abbreviation: "NIVUK"},
	{ID: "nlv", Name: "New Life Version", Abbreviation: "NLV"},
	{ID: "nog", Name: "Names of God Bible", Abbreviation: "NOG"},
	{ID: "nrsv", Name: "New Revised Standard Version", Abbreviation: "NRSV"},
	{ID: "nrsvue", Name: "New Revised Standard Version Updated Edition", Abbreviation: "NRSVUE"},
	{ID: "ylt", Name: "Young's Literal Translation", Abbreviation: "YLT"},
}

// DefaultTranslationID is used when a session has not chosen a translation.
const DefaultTranslationID = "kjv"

// Books is the ordered list of the 66 canonical books.
var Books = []Book{
	{ID: "genesis", Name: "Genesis", Testament: TestamentOld, Order: 1},
	{ID: "exodus", Name: "Exodus", Testament: TestamentOld, Order: 2},
	{ID: "leviticus", Name: "Leviticus", Testament: TestamentOld, Order: 3},
	{ID: "numbers", Name: "Numbers", Testament: TestamentOld, Order: 4},
	{ID: "deuteronomy", Name: "Deuteronomy", Testament: TestamentOld, Order: 5},
	{ID: "joshua", Name: "Joshua", Testament: TestamentOld, Order: 6},
	{ID: "judges", Name: "Judges", Testament: TestamentOld, Order: 7},
	{ID: "ruth", Name: "Ruth", Testament: TestamentOld, Order: 8},
	{ID: "1samuel", Name: "1 Samuel", Testament: TestamentOld, Order: 9},
	{ID: "2samuel", Name: "2 Samuel", Testament: TestamentOld, Order: 10},
	{ID: "1kings", Name: "1 Kings", Testament: TestamentOld, Order: 11},
	{ID: "2kings", Name: "2 Kings", Testament: TestamentOld, Order: 12},
	{ID: "1chronicles", Name: "1 Chronicles", Testament: TestamentOld, Order: 13},
	{ID: "2chronicles", Name: "2 Chronicles", Testament: TestamentOld, Order: 14},
	{ID: "ezra", Name: "Ezra", Testament: TestamentOld, Order: 15},
	{ID: "nehemiah", Name: "Nehemiah", Testament: TestamentOld, Order: 16},
	{ID: "esther", Name: "Esther", Testament: TestamentOld, Order: 17},
	{ID: "job", Name: "Job", Testament: TestamentOld, Order: 18},
	{ID: "psalm", Name: "Psalm", Testament: TestamentOld, Order: 19},
	{ID: "proverbs", Name: "Proverbs", Testament: TestamentOld, Order: 20},
	{ID: "songofsolomon", Name: "Song Of Solomon", Testament: TestamentOld, Order: 21},
	{ID: "ecclesiastes", Name: "Ecclesiastes", Testament: TestamentOld, Order: 22},
	{ID: "isaiah", Name: "Isaiah", Testament: TestamentOld, Order: 23},
	{ID: "jeremiah", Name: "Jeremiah", Testament: TestamentOld, Order: 24},
	{ID: "lamentations", Name: "Lamentations", Testament: TestamentOld, Order: 25},
	{ID: "ezekiel", Name: "Ezekiel", Testament: TestamentOld, Order: 26},
	{ID: "daniel", Name: "Daniel", Testament: TestamentOld, Order: 27},
	{ID: "hosea", Name: "Hosea", Testament: TestamentOld, Order: 28},
	{ID: "joel", Name: "Joel", Testament: TestamentOld, Order: 29},
	{ID: "amos", Name: "Amos", Testament: TestamentOld, Order: 30},
	{ID: "obadiah", Name: "Obadiah", Testament: TestamentOld, Order: 31},
	{ID: "jonah", Name: "Jonah", Testament: TestamentOld, Order: 32},
	{ID: "micah", Name: "Micah", Testament: TestamentOld, Order: 33},
	{ID: "nahum", Name: "Nahum", Testament: TestamentOld, Order: 34},
	{ID: "habakkuk", Name: "Habakkuk", Testament: TestamentOld, Order: 35},
	{ID: "zephaniah", Name: "Zephaniah", Testament: TestamentOld, Order: 36},
	{ID: "haggai", Name: "Haggai", Testament: TestamentOld, Order: 37},
	{ID: "zechariah", Name: "Zechariah", Testament: TestamentOld, Order: 38},
	{ID: "malachi", Name: "Malachi", Testament: TestamentOld, Order: 39},
	{ID: "matthew", Name: "Matthew", Testament: TestamentNew, Order: 40},
	{ID: "mark", Name: "Mark", Testament: TestamentNew, Order: 41},
	{ID: "luke", Name: "Luke", Testament: TestamentNew, Order: 42},
	{ID: "john", Name: "John", Testament: TestamentNew, Order: 43},
	{ID: "acts", Name: "Acts", Testament: TestamentNew, Order: 44},
	{ID: "romans", Name: "Romans", Testament: TestamentNew, Order: 45},
	{ID: "1corinthians", Name: "1 Corinthians", Testament: TestamentNew, Order: 46},
	{ID: "2corinthians", Name: "2 Corinthians", Testament: TestamentNew, Order: 47},
	{ID: "galatians", Name: "Galatians", Testament: TestamentNew, Order: 48},
	{ID: "ephesians", Name: "Ephesians", Testament: TestamentNew, Order: 49},
	{ID: "philippians", Name: "Philippians", Testament: TestamentNew, Order: 50},
	{ID: "colossians", Name: "Colossians", Testament: TestamentNew, Order: 51},
	{ID: "1thessalonians", Name: "1 Thessalonians", Testament: TestamentNew, Order: 52},
	{ID: "2thessalonians", Name: "2 Thessalonians", Testament: TestamentNew, Order: 53},
	{ID: "1timothy", Name: "1 Timothy", Testament: TestamentNew, Order: 54},
	{ID: "2timothy", Name: "2 Timothy", Testament: TestamentNew, Order: 55},
	{ID: "titus", Name: "Titus", Testament: TestamentNew, Order: 56},
	{ID: "philemon", Name: "Philemon", Testament: TestamentNew, Order: 57},
	{ID: "hebrews", Name: "Hebrews", Testament: TestamentNew, Order: 58},
	{ID: "james", Name: "James", Testament: TestamentNew, Order: 59},
	{ID: "1peter", Name: "1 Peter", Testament: TestamentNew, Order: 60},
	{ID: "2peter", Name: "2 Peter", Testament: TestamentNew, Order: 61},
	{ID: "1john", Name: "1 John", Testament: TestamentNew, Order: 62},
	{ID: "2john", Name: "2 John", Testament: TestamentNew, Order: 63},
	{ID: "3john", Name: "3 John", Testament: TestamentNew, Order: 64},
	{ID: "jude", Name: "Jude", Testament: TestamentNew, Order: 65},
	{ID: "revelation", Name: "Revelation", Testament: TestamentNew, Order: 66},
}

// TranslationByID looks up a translation by its lowercase id.
func TranslationByID(id string) (Translation, bool) {
	id = strings.ToLower(id)
	for _, t := range Translations {
		if t.ID == id {
			return t, true
		}
	}
	return Translation{}, false
}

// BookByID looks up a book by its id, case-insensitively.
func BookByID(id string) (Book, bool) {
	id = strings.ToLower(id)
	for _, b := range Books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// IsBookAvailable reports whether the given id names a canonical book.
func IsBookAvailable(id string) bool {
	_, ok := BookByID(id)
	return ok
}

// AvailableForComparison returns every translation except the current one.
func AvailableForComparison(currentID string) []Translation {
	out := make([]Translation, 0, len(Translations)-1)
	for _, t := range Translations {
		if t.ID != strings.ToLower(currentID) {
			out = append(out, t)
		}
	}
	return out
}
