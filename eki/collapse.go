package eki

import "github.com/teksti/translit"

// collapseFinalIJ rewrites a word ending in "ий" (either case) to end in
// a single Latin "i" instead, dropping the й and shortening the word by
// one rune. Words of three runes or less keep their ending: Горький
// becomes Gorki, while Вий stays Vii. Only a sequence ending exactly at
// the word boundary qualifies; Новороссийск is left alone.
//
// The rewrite happens in place. The substituted "i" is a Latin rune and
// passes through all later resolution untouched, which is what pins the
// ending to a single i.
func collapseFinalIJ(w translit.Word) translit.Word {
	n := w.Len()
	if n <= 3 {
		return w
	}
	last, _ := w.At(n - 1)
	if last != 'й' && last != 'Й' {
		return w
	}
	prev, _ := w.At(n - 2)
	if prev != 'и' && prev != 'И' {
		return w
	}
	w[n-2] = rune(translit.WithCaseOf(prev, "I")[0])
	return w[:n-1]
}
