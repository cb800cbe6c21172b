// Package phrase turns transcribed spoken arithmetic into symbolic
// expressions.
//
// Normalize cleans up a transcript, and Substitute replaces operator,
// function, and number words with symbols and digits:
//
//	Substitute(Normalize("Three point five PLUS two point two")) == "3.5 + 2.2"
//
// Words that no table knows pass through unchanged. Applying both again to
// their own output changes nothing.
package phrase

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

type matcher struct {
	re     *regexp.Regexp
	symbol string
}

var (
	tokenres = compile(Tokens)
	numbers  = func() map[string]string {
		m := make(map[string]string, len(Numbers))
		for _, n := range Numbers {
			m[n.Word] = strconv.Itoa(n.Value)
		}
		return m
	}()
	fillers = func() map[string]bool {
		m := make(map[string]bool, len(Fillers))
		for _, w := range Fillers {
			m[w] = true
		}
		return m
	}()

	// glyphDigits is a square root glyph written directly against digits.
	glyphDigits = regexp.MustCompile(`√(\d+)`)
)

// compile builds a whole-word matcher for each rule. Words of a phrase may
// be separated by any whitespace.
func compile(rules []Rule) []matcher {
	m := make([]matcher, len(rules))
	for i, r := range rules {
		words := strings.Fields(r.Phrase)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		pat := strings.Join(words, `\s+`)
		if c, _ := utf8.DecodeRuneInString(r.Phrase); isWord(c) {
			pat = `\b` + pat
		}
		if c, _ := utf8.DecodeLastRuneInString(r.Phrase); isWord(c) {
			pat += `\b`
		}
		m[i] = matcher{re: regexp.MustCompile(pat), symbol: r.Symbol}
	}
	return m
}

// isWord reports whether \b treats c as a word character.
func isWord(c rune) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// Normalize folds a transcript to the form the tables use. Full-width forms
// become ASCII and diacritics are dropped, then the text is lower-cased,
// trimmed, and run-together idioms are split. Other compatibility forms such
// as superscript digits are kept, so "2²" never reads as 22.
func Normalize(utterance string) string {
	fold := transform.Chain(width.Fold, norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(fold, utterance)
	if err != nil {
		s = utterance
	}
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range Idioms {
		s = strings.ReplaceAll(s, r.Phrase, r.Symbol)
	}
	return s
}

// Substitute replaces operator and function phrases with their symbols,
// square root glyphs with sqrt, and number words with digits. The result
// has words separated by single spaces.
func Substitute(normalized string) string {
	s := normalized
	for _, m := range tokenres {
		s = m.re.ReplaceAllLiteralString(s, m.symbol)
	}
	s = glyphDigits.ReplaceAllString(s, "sqrt ${1}")
	s = strings.ReplaceAll(s, "√", " sqrt ")

	words := strings.Fields(s)
	out := make([]string, 0, len(words))
	for i := 0; i < len(words); i++ {
		w := words[i]
		if fillers[w] {
			continue
		}
		if d, ok := numbers[w]; ok {
			w = d
		}
		if w == "." && i+1 < len(words) {
			// "3 . 5" is 3.5, and ". 5" is .5.
			next := words[i+1]
			if d, ok := numbers[next]; ok {
				next = d
			}
			if isDigits(next) {
				if n := len(out); n > 0 && isDigits(out[n-1]) {
					out[n-1] += "." + next
				} else {
					out = append(out, "."+next)
				}
				i++
				continue
			}
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// Symbolic is Substitute(Normalize(utterance)).
func Symbolic(utterance string) string {
	return Substitute(Normalize(utterance))
}

// Lookup returns the value of a number word.
func Lookup(word string) (int, bool) {
	d, ok := numbers[word]
	if !ok {
		return 0, false
	}
	v, _ := strconv.Atoi(d)
	return v, true
}

// isDigits returns true if s is a non-empty sequence of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
