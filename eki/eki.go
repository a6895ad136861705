/*
Package eki implements the EKI rules for transliterating Russian
Cyrillic into the Estonian Latin alphabet.

Content

The ruleset is published by the Estonian Language Institute as "Vene
keele tähestikust eesti tähestikku" (2005). Most Cyrillic letters have a
fixed Latin rendering and are resolved through a plain lookup table.
A closed set of letters (е, ё, и, й, х, с and the soft sign ь) is
ambiguous: the correct rendering depends on the letter's position in its
word and on the neighboring letters. Each ambiguous letter belongs to a
Class, and each class has exactly one contextual rule.

A single word-level rewrite precedes the per-letter rules: a word-final
"ий" of words longer than three letters collapses to a single "i"
(Горький → Gorki, but Вий → Vii).

Typical Usage

Clients rarely use this package directly; the sentence driver applies it
word by word:

  t := sentence.New()
  out := t.Sentence("Сергей говорит")

For single words, the Scheme may be driven by hand:

  s := eki.New()
  w := s.RewriteWord(translit.MakeWord("Денис"))
  for i := 0; i < w.Len(); i++ {
      fmt.Print(s.ResolveRune(w, i))
  }
  // prints Deniss

Characters outside the Cyrillic alphabet (Latin letters, digits,
punctuation) are passed through verbatim, so mixed-script text is safe
to convert.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2023 Teksti OÜ
*/
package eki

import (
	"sync"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"github.com/teksti/translit"
)

// tracer traces to translit.eki .
func tracer() tracing.Trace {
	return tracing.Select("translit.eki")
}

// Class denotes a family of ambiguous Cyrillic letters sharing one
// contextual rule. Dispatching on a closed set of classes keeps the
// ruleset exhaustively checkable; see resolveClass.
type Class int8

// Classes of ambiguous letters. None marks letters which are not
// ambiguous, i.e. resolved by table lookup or passed through.
const (
	None Class = iota
	ClassE      // е
	ClassJo     // ё
	ClassI      // и and й
	ClassH      // х
	ClassS      // с
	ClassSoft   // ь
)

func (c Class) String() string {
	switch c {
	case ClassE:
		return "E"
	case ClassJo:
		return "Jo"
	case ClassI:
		return "I"
	case ClassH:
		return "H"
	case ClassS:
		return "S"
	case ClassSoft:
		return "Soft"
	}
	return "None"
}

// The static tables. simple holds every letter with a context-free
// rendering; classOf assigns ambiguous letters to their rule class;
// vowels is consulted by nearly every contextual rule. All three are
// read-only after setup and safe to share across goroutines.
var (
	simple  map[rune]string
	classOf map[rune]Class
	vowels  map[rune]bool
)

// Lowercase renderings of the unambiguous letters. Uppercase keys and
// title-cased values are derived during setup. The hard sign ъ is
// dropped unconditionally.
var lowerSimple = map[rune]string{
	'а': "a",
	'б': "b",
	'в': "v",
	'г': "g",
	'д': "d",
	'ж': "ž",
	'з': "z",
	'к': "k",
	'л': "l",
	'м': "m",
	'н': "n",
	'о': "o",
	'п': "p",
	'р': "r",
	'т': "t",
	'у': "u",
	'ф': "f",
	'ц': "ts",
	'ч': "tš",
	'ш': "š",
	'щ': "štš",
	'ъ': "",
	'ы': "õ",
	'э': "e",
	'ю': "ju",
	'я': "ja",
}

var lowerClasses = map[Class]string{
	ClassE:    "е",
	ClassJo:   "ё",
	ClassI:    "ий",
	ClassH:    "х",
	ClassS:    "с",
	ClassSoft: "ь",
}

const lowerVowels = "аэыуояеёюи"

var setupOnce sync.Once

// SetupClasses is the top-level preparation function: build the lookup
// table, the class assignment and the vowel set for both letter cases.
// (Concurrency-safe.)
//
// The scheme constructor calls this transparently if it has not been
// called beforehand.
func SetupClasses() {
	setupOnce.Do(setupTables)
}

func setupTables() {
	tracer().Infof("EKI tables not yet initialized -> initializing")
	simple = make(map[rune]string, 2*len(lowerSimple))
	for r, latin := range lowerSimple {
		simple[r] = latin
		simple[unicode.ToUpper(r)] = titleCase(latin)
	}
	classOf = make(map[rune]Class)
	for c, letters := range lowerClasses {
		for _, r := range letters {
			classOf[r] = c
			classOf[unicode.ToUpper(r)] = c
		}
	}
	vowels = make(map[rune]bool)
	for _, r := range lowerVowels {
		vowels[r] = true
		vowels[unicode.ToUpper(r)] = true
	}
}

// titleCase uppercases the first letter of a rendering: "štš" → "Štš".
func titleCase(latin string) string {
	for i, r := range latin {
		return string(unicode.ToUpper(r)) + latin[i+len(string(r)):]
	}
	return latin
}

// ClassForRune gets the rule class for a Cyrillic letter. Letters
// outside the ambiguous set are classified as None.
func ClassForRune(r rune) Class {
	SetupClasses()
	return classOf[r]
}

// isVowel is true for the ten Cyrillic vowels, either case.
func isVowel(r rune) bool {
	return vowels[r]
}

// === Scheme ====================================================

// Scheme is the EKI transliteration ruleset. It implements the
// translit.Scheme interface and carries no state of its own; all data
// lives in the immutable package tables, so a single Scheme value may be
// shared by concurrent drivers.
type Scheme struct{}

// New creates the EKI scheme, initializing the static tables if
// necessary.
//
// Usage:
//
//   scheme := eki.New()
//   t := sentence.New(scheme)
//   for ... t.Sentence(...)
//
func New() *Scheme {
	SetupClasses()
	return &Scheme{}
}

// RewriteWord applies the word-final "ий" collapse. The result is the
// word all per-rune rules operate on: positions and lengths seen by the
// rules refer to the collapsed word.
// (Interface translit.Scheme)
func (s *Scheme) RewriteWord(w translit.Word) translit.Word {
	return collapseFinalIJ(w)
}

// ResolveRune maps the rune at position pos of word w to its Latin
// rendering: a table hit for unambiguous letters, the contextual rule
// result for ambiguous ones, and the rune itself for anything outside
// the Cyrillic alphabet.
// (Interface translit.Scheme)
func (s *Scheme) ResolveRune(w translit.Word, pos int) string {
	SetupClasses()
	r, ok := w.At(pos)
	if !ok {
		return ""
	}
	if latin, ok := simple[r]; ok {
		return latin
	}
	if c := classOf[r]; c != None {
		latin := resolveClass(c, w, pos, r)
		tracer().Debugf("rule %s resolved %#U at %d to %q", c, r, pos, latin)
		return latin
	}
	return string(r)
}
