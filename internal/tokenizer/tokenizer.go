// Package tokenizer splits natural-language text into lowercase words,
// ported from the per-character scan in the original dictionary_* drivers:
// a word is a run of Unicode letters that may contain internal hyphens, as
// long as each hyphen is flanked by a letter on both sides. A word only
// breaks on whitespace; any other punctuation is dropped without breaking
// the word it sits inside, matching the original driver's per-character
// scan (it only flushes the accumulated word on a literal space or line
// end, silently skipping every other non-letter character).
package tokenizer

import (
	"bufio"
	"io"
	"unicode"

	"github.com/go-kit/log/level"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	dictlog "github.com/dictbench/dictbench/pkg/util/log"
)

var lowerCaser = cases.Lower(language.Und)

// punctuationWarnings rate-limits the dropped-punctuation warning so a file
// full of stray punctuation doesn't flood stderr with one line per rune.
var punctuationWarnings = dictlog.NewRateLimitedLogger(5, dictlog.Logger)

// Words reads r rune by rune and returns the lowercase words it contains,
// in order. Leading/trailing hyphens and any hyphen not flanked by letters
// on both sides are dropped without breaking the word, same as any other
// punctuation.
func Words(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var words []string
	var current []rune

	flush := func() {
		if len(current) == 0 {
			return
		}
		words = append(words, lowerCaser.String(string(current)))
		current = current[:0]
	}

	var runes []rune
	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		runes = append(runes, c)
	}

	for i, c := range runes {
		switch {
		case unicode.IsLetter(c):
			current = append(current, c)
		case c == '-' && isInternalHyphen(runes, i):
			current = append(current, c)
		case unicode.IsSpace(c):
			flush()
		default:
			level.Warn(punctuationWarnings).Log("msg", "dropping punctuation rune", "rune", string(c))
		}
	}
	flush()

	return words, nil
}

func isInternalHyphen(runes []rune, i int) bool {
	if i == 0 || i == len(runes)-1 {
		return false
	}
	return unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1])
}

