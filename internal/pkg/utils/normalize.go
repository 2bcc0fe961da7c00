package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics раскладывает текст в NFD и отбрасывает комбинируемые знаки
var foldDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeName приводит название места к ключу сравнения: нижний регистр,
// без диакритики, любые последовательности не-буквенно-цифровых символов
// заменяются одним подчёркиванием. Идемпотентна:
// NormalizeName(NormalizeName(s)) == NormalizeName(s).
func NormalizeName(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	folded, _, err := transform.String(foldDiacritics, lower)
	if err != nil {
		folded = lower
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}

	return b.String()
}
