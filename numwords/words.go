// Grammar table for English number words.
package numwords

const (
	maxValue int64 = 999_999_999_999

	hundred  int64 = 100
	thousand int64 = 1_000
	million  int64 = 1_000_000
	billion  int64 = 1_000_000_000

	dozen int64 = 12
	score int64 = 20

	// improperLimit is the exclusive upper bound on a multiplier written
	// directly before "hundred" ("nineteen hundred" is 1900, "twenty hundred"
	// is rejected).
	improperLimit int64 = 20
)

// word binds a surface form to its normalized value.
type word struct {
	surface string
	value   int64
}

var (
	wordZero = word{"zero", 0}
	wordTen  = word{"ten", 10}
	wordA    = word{"a", 1}
	wordAnd  = word{"and", 0}
)

var onesWords = []word{
	{"one", 1},
	{"two", 2},
	{"three", 3},
	{"four", 4},
	{"five", 5},
	{"six", 6},
	{"seven", 7},
	{"eight", 8},
	{"nine", 9},
}

var teenWords = []word{
	{"eleven", 11},
	{"twelve", 12},
	{"thirteen", 13},
	{"fourteen", 14},
	{"fifteen", 15},
	{"sixteen", 16},
	{"seventeen", 17},
	{"eighteen", 18},
	{"nineteen", 19},
}

var tensWords = []word{
	{"twenty", 20},
	{"thirty", 30},
	{"forty", 40},
	{"fifty", 50},
	{"sixty", 60},
	{"seventy", 70},
	{"eighty", 80},
	{"ninety", 90},
}

// magnitude is a base that a preceding multiplier scales.
// The composition rule for each base is chosen by compose from its value.
type magnitude word

var (
	magBillion  = magnitude{"billion", billion}
	magMillion  = magnitude{"million", million}
	magThousand = magnitude{"thousand", thousand}
	magHundred  = magnitude{"hundred", hundred}
	magScore    = magnitude{"score", score}
	magDozen    = magnitude{"dozen", dozen}

	// magUnit stands for "no further magnitude word". It matches the empty
	// string and composes to the bare multiplier.
	magUnit = magnitude{"", 1}
)

// largeMagnitudes lists the powers of ten above one hundred, largest first.
var largeMagnitudes = []magnitude{magBillion, magMillion, magThousand}

// topLevelBases is the set of bases tried by the top-level scaled rule.
var topLevelBases = []magnitude{magHundred, magBillion, magMillion, magThousand}

// irregularBases are the terminal magnitudes that take only a ones remainder.
var irregularBases = []magnitude{magDozen, magScore}

// articleBases are the magnitudes leadingA lets the article "a" stand before.
// "a hundred" is parsed by properHundreds instead, where it may go on to
// scale a thousand, million, or billion.
var articleBases = []magnitude{magBillion, magMillion, magThousand, magDozen, magScore}

// smallerBases returns the large magnitudes strictly below base, followed by
// magUnit. These are the only bases allowed in the remainder of base.
func smallerBases(base int64) []magnitude {
	bases := make([]magnitude, 0, len(largeMagnitudes)+1)
	for _, m := range largeMagnitudes {
		if m.value < base {
			bases = append(bases, m)
		}
	}
	return append(bases, magUnit)
}

// leadingWords lists every word a number phrase can begin with. Magnitude
// words always follow a multiplier and are not included.
func leadingWords() []word {
	words := []word{wordZero, wordTen, wordA}
	words = append(words, onesWords...)
	words = append(words, teenWords...)
	return append(words, tensWords...)
}

// numberInitials holds the lowercase first bytes of leadingWords.
var numberInitials = func() (set [256]bool) {
	for _, w := range leadingWords() {
		set[w.surface[0]] = true
	}
	return set
}()

// startsNumberWord reports whether a word beginning with b could start a number
// phrase. Used by the extractor to skip words without running the grammar.
func startsNumberWord(b byte) bool {
	return numberInitials[lower(b)]
}
