package sentence

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// A Transformer adapts a Transliterator to the transform.Transformer
// interface of golang.org/x/text, so that transliteration composes with
// other text transforms and streams through transform.Reader/Writer.
//
// The transformer buffers the runes of the current word and emits the
// word's rendering at every blank and at the end of input. Buffered
// state survives short-destination round trips, so a Transformer must
// not be shared; create one per stream and Reset it before reuse.
type Transformer struct {
	t    *Transliterator
	word []byte // runes of the current, unfinished word
	out  []byte // rendered output not yet copied to dst
}

var _ transform.Transformer = (*Transformer)(nil)

// Transformer creates a streaming transformer backed by t.
func (t *Transliterator) Transformer() *Transformer {
	return &Transformer{t: t}
}

// Reset discards all buffered state.
// (Interface transform.Transformer)
func (tr *Transformer) Reset() {
	tr.word = tr.word[:0]
	tr.out = tr.out[:0]
}

// Transform converts bytes from src to dst, word by word.
// (Interface transform.Transformer)
func (tr *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		if len(tr.out) > 0 {
			n := copy(dst[nDst:], tr.out)
			nDst += n
			tr.out = tr.out[n:]
			if len(tr.out) > 0 {
				return nDst, nSrc, transform.ErrShortDst
			}
		}
		if nSrc == len(src) {
			if atEOF && len(tr.word) > 0 {
				tr.flushWord()
				continue
			}
			return nDst, nSrc, nil
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		nSrc += size
		if r == ' ' {
			tr.flushWord()
			tr.out = append(tr.out, ' ')
		} else {
			tr.word = append(tr.word, src[nSrc-size:nSrc]...)
		}
	}
}

func (tr *Transformer) flushWord() {
	tr.out = append(tr.out, tr.t.Word(string(tr.word))...)
	tr.word = tr.word[:0]
}
