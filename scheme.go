package translit

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Scheme represents a transliteration standard. Schemes are used by
// drivers (see sub-package sentence) to convert text word by word.
//
// RewriteWord performs word-level preprocessing and returns the word all
// subsequent per-rune resolution operates on. Implementations may modify
// the argument in place; drivers hand over ownership of the word for the
// duration of the conversion. Schemes without word-level rewrites return
// the argument unchanged.
//
// ResolveRune maps the rune at the given position of a (rewritten) word
// to its Latin rendering. The result may be a single letter, a digraph,
// the empty string for dropped characters, or the rune itself for
// characters outside the scheme's alphabet.
type Scheme interface {
	RewriteWord(Word) Word
	ResolveRune(Word, int) string
}

// Word buffers are short-lived objects. To avoid multiple allocation of
// small rune slices we will pool them.
type wordPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalWordPool *wordPool

func init() {
	globalWordPool = &wordPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			w := make(Word, 0, 32)
			return &w, nil
		})
	globalWordPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalWordPool.opool = pool.NewObjectPool(globalWordPool.ctx, factory, config)
}

// BorrowWord returns a pooled word buffer, pre-filled with the runes of s.
// Clients must hand the buffer back with ReleaseWord when the conversion
// of the word is complete.
func BorrowWord(s string) *Word {
	o, _ := globalWordPool.opool.BorrowObject(globalWordPool.ctx)
	wp := o.(*Word)
	w := (*wp)[:0]
	for _, r := range s {
		w = append(w, r)
	}
	*wp = w
	return wp
}

// ReleaseWord clears a word buffer and puts it back into the pool.
func ReleaseWord(wp *Word) {
	*wp = (*wp)[:0]
	_ = globalWordPool.opool.ReturnObject(globalWordPool.ctx, wp)
}
