package eki

import (
	"strings"

	"github.com/teksti/translit"
)

// resolveClass dispatches an ambiguous letter to the rule of its class.
// The switch covers every class except None, which never reaches this
// point; an unhandled class would fall through to the plain rendering
// and is guarded against by the exhaustiveness test.
func resolveClass(c Class, w translit.Word, pos int, r rune) string {
	switch c {
	case ClassE:
		return ruleE(w, pos, r)
	case ClassJo:
		return ruleJo(w, pos, r)
	case ClassI:
		return ruleI(w, pos, r)
	case ClassH:
		return ruleDoubling(w, pos, r, "Hh", "H")
	case ClassS:
		return ruleDoubling(w, pos, r, "Ss", "S")
	case ClassSoft:
		return ruleSoft(w, pos, r)
	}
	return string(r)
}

// е → "je" at the start of a word and after vowels and the signs ь, ъ;
// plain "e" otherwise (Егоров → Jegorov, Сергей → Sergei).
func ruleE(w translit.Word, pos int, r rune) string {
	if pos == 0 {
		return translit.WithCaseOf(r, "Je")
	}
	if prev, ok := w.Prev(pos); ok && (isVowel(prev) || strings.ContainsRune("ьъЬЪ", prev)) {
		return translit.WithCaseOf(r, "Je")
	}
	return translit.WithCaseOf(r, "E")
}

// ё → "o" after the hushing consonants ж, ч, ш, щ; "jo" otherwise
// (Пугачёв → Pugatšov, Орёл → Orjol).
func ruleJo(w translit.Word, pos int, r rune) string {
	if prev, ok := w.Prev(pos); ok && strings.ContainsRune("жчшщЖЧШЩ", prev) {
		return translit.WithCaseOf(r, "O")
	}
	return translit.WithCaseOf(r, "Jo")
}

// и and й → "j" when starting a word of more than one letter whose
// second letter is a vowel; "i" otherwise (Иосиф → Jossif,
// Филин → Filin). A qualifying word-final й has already been removed by
// the collapse rewrite; this rule covers all remaining occurrences.
func ruleI(w translit.Word, pos int, r rune) string {
	if pos == 0 && w.Len() > 1 {
		if next, ok := w.Next(pos); ok && isVowel(next) {
			return translit.WithCaseOf(r, "J")
		}
	}
	return translit.WithCaseOf(r, "I")
}

// х and с double after a vowel when the word is two letters long, the
// following letter is a vowel, or the letter ends the word
// (Чехов → Tšehhov, Денис → Deniss). The two letters share this one
// rule; only the produced digraph differs.
//
// The word-final trigger is kept separate from the next-is-vowel
// trigger even though they overlap for some word shapes: a word-final
// letter has no following vowel to test.
func ruleDoubling(w translit.Word, pos int, r rune, double, single string) string {
	if prev, ok := w.Prev(pos); ok && isVowel(prev) {
		next, hasNext := w.Next(pos)
		switch {
		case w.Len() == 2:
			return translit.WithCaseOf(r, double)
		case hasNext && isVowel(next):
			return translit.WithCaseOf(r, double)
		case w.IsLast(pos):
			return translit.WithCaseOf(r, double)
		}
	}
	return translit.WithCaseOf(r, single)
}

// ь → "j" before vowels other than е, ё, ю, я; dropped otherwise
// (Ильич → Iljitš, Тотьма → Totma). Before е the iotation comes from
// the е rule instead: Васильев → Vassiljev.
func ruleSoft(w translit.Word, pos int, r rune) string {
	if next, ok := w.Next(pos); ok && !strings.ContainsRune("еёюяЕЁЮЯ", next) && isVowel(next) {
		return translit.WithCaseOf(r, "J")
	}
	return ""
}
