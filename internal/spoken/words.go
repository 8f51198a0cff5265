package spoken

const (
	// Hundred is the only scale word the grammar understands.
	Hundred = "hundred"
	// And may join a tens word to a ones word, or follow "hundred".
	And = "and"
)

var numberWords = map[string]int{
	"zero":      0,
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
	"thirty":    30,
	"forty":     40,
	"fifty":     50,
	"sixty":     60,
	"seventy":   70,
	"eighty":    80,
	"ninety":    90,
	Hundred:     100,
}

// Lookup returns the value of a single lowercase number word.
func Lookup(word string) (int, bool) {
	v, ok := numberWords[word]
	return v, ok
}

// Words returns a copy of the word table; changes to it are not seen by Parse.
func Words() map[string]int {
	out := make(map[string]int, len(numberWords))
	for k, v := range numberWords {
		out[k] = v
	}
	return out
}

func inRange(word string, lo, hi int) (int, bool) {
	v, ok := numberWords[word]
	if !ok || v < lo || v > hi {
		return 0, false
	}
	return v, true
}
