/*
Package translit is about transliteration of Cyrillic text into the
Estonian Latin alphabet.

Description

The Estonian Language Institute (EKI) publishes a standard for rendering
Russian Cyrillic in Estonian orthography ("Vene keele tähestikust eesti
tähestikku", 2005). Unlike romanization tables which map every Cyrillic
letter to a fixed Latin equivalent, the EKI rules are context-sensitive:
a closed set of characters has no single correct rendering, and the
correct output depends on the character's position within its word and
on the neighboring characters. The letter е, for example, is rendered
"je" at the start of a word or after a vowel, but plain "e" after a
consonant; х and с double to "hh" and "ss" between vowels and at certain
word endings.

Contents

The concrete ruleset lives in sub-package eki. The driver type sits in
sub-package sentence and will apply a ruleset word by word to
whitespace-delimited text.

Base package translit provides the necessary means to implement
transliteration rulesets: a read-only Word type with bounds-checked
neighbor access, case propagation from source characters to their Latin
renderings, and pooling of short-lived word buffers. Rulesets implement
interface Scheme and are consulted by drivers once per rune.

Contextual rules need to inspect characters left and right of the
current position. Word offers this lookaround through accessors which
report an explicit "no such neighbor" result at word boundaries, so
rules never have to guard index arithmetic themselves.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2023 Teksti OÜ
*/
package translit

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
