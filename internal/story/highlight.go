package story

import (
	"regexp"
	"sort"
	"strings"
)

// Span is a run of resolved text with an emphasis flag. Concatenating the
// spans of a highlight reproduces the input exactly.
type Span struct {
	Text       string
	Emphasized bool
}

// vocabulary lists the thematically significant terms marked for emphasis.
// Matching is case-insensitive and whole-word; phrases match as one span.
var vocabulary = []string{
	"dimensión paralela",
	"ondas dimensionales",
	"inclinas",
	"mueves",
	"cámara",
	"ubicación",
	"tiempo",
	"realidad",
	"fantasmas",
	"vibración",
	"conexión",
}

var vocabPattern = compileVocabulary(vocabulary)

// compileVocabulary builds a single alternation, longest terms first so a
// phrase wins over any word it contains.
func compileVocabulary(terms []string) *regexp.Regexp {
	sorted := make([]string, len(terms))
	copy(sorted, terms)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	escaped := make([]string, len(sorted))
	for i, t := range sorted {
		escaped[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`)
}

// Highlight splits resolved text into spans, marking vocabulary matches for
// emphasis. Matches never split words, never nest and never overlap.
func Highlight(text string) []Span {
	matches := vocabPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		if text == "" {
			return nil
		}
		return []Span{{Text: text}}
	}

	spans := make([]Span, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		spans = append(spans, Span{Text: text[m[0]:m[1]], Emphasized: true})
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}
