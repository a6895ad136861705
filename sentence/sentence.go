/*
Package sentence drives transliteration over whitespace-delimited text.

Typical Usage

Clients create a Transliterator and feed it words, sentences, or batches
of sentences:

  t := sentence.New()
  out, err := t.Sentences([]string{"Сергей играет", "Денис говорит"})
  // out == []string{"Sergei igrajet", "Deniss govorit"}

The default ruleset is the EKI scheme from sub-package eki; a different
translit.Scheme may be supplied to New.

How it works

A sentence is split into words on the literal space character: no
trimming and no collapsing of repeated blanks, so the word count of a
sentence is preserved exactly and an empty word between two blanks
reproduces as empty. Each word is handed to the scheme for its one-time
rewrite, then resolved rune by rune, and the renderings are concatenated
in order. Runes outside the scheme's alphabet survive untouched, which
keeps Latin letters, digits and punctuation intact in mixed-script text.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2023 Teksti OÜ
*/
package sentence

import (
	"errors"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/samber/lo"
	"github.com/teksti/translit"
	"github.com/teksti/translit/eki"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNilInput is returned if a nil sentence list is passed to a batch
// operation. It is the only externally visible failure mode: conversion
// itself never fails, as unmapped characters pass through verbatim.
var ErrNilInput = errors.New("translit: sentence list is nil")

// A Transliterator converts Cyrillic text into its Latin rendering,
// word by word. The zero value is not usable; create Transliterators
// with New.
//
// Transliterators are stateless between calls and may be used from
// multiple goroutines concurrently.
type Transliterator struct {
	scheme translit.Scheme
}

// New creates a new Transliterator by providing a transliteration
// ruleset (translit.Scheme). Specifying no scheme results in getting the
// EKI Cyrillic scheme (see package eki).
func New(schemes ...translit.Scheme) *Transliterator {
	t := &Transliterator{}
	if len(schemes) == 0 {
		t.scheme = eki.New()
	} else {
		t.scheme = schemes[0]
	}
	return t
}

// Word converts a single word, i.e. a string without internal
// whitespace. The word is rewritten once by the scheme, then resolved
// rune by rune.
func (t *Transliterator) Word(word string) string {
	wp := translit.BorrowWord(word)
	defer translit.ReleaseWord(wp)
	w := t.scheme.RewriteWord(*wp)
	var b strings.Builder
	b.Grow(len(word))
	for i := 0; i < w.Len(); i++ {
		b.WriteString(t.scheme.ResolveRune(w, i))
	}
	return b.String()
}

// Sentence converts one sentence. Words are delimited by single blanks
// (U+0020); the blank structure of the sentence is reproduced exactly.
func (t *Transliterator) Sentence(s string) string {
	words := strings.Split(s, " ")
	CT().Debugf("transliterating sentence of %d word(s)", len(words))
	converted := lo.Map(words, func(word string, _ int) string {
		return t.Word(word)
	})
	return strings.Join(converted, " ")
}

// Sentences converts an ordered batch of sentences. The result has the
// same length and order as the input. A nil input is rejected with
// ErrNilInput; an empty, non-nil input yields an empty result.
func (t *Transliterator) Sentences(sentences []string) ([]string, error) {
	if sentences == nil {
		return nil, ErrNilInput
	}
	return lo.Map(sentences, func(s string, _ int) string {
		return t.Sentence(s)
	}), nil
}
