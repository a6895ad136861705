package sentence

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SentencesContext converts a batch of sentences with one goroutine per
// sentence. Sentences are independent of each other and the underlying
// tables are immutable, so the fan-out needs no locking; results are
// written into their input slots to keep the order stable.
//
// The context is only consulted between sentences: a conversion that has
// started always runs to completion. On cancellation the partial result
// is discarded and the context's error returned.
func (t *Transliterator) SentencesContext(ctx context.Context, sentences []string) ([]string, error) {
	if sentences == nil {
		return nil, ErrNilInput
	}
	out := make([]string, len(sentences))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range sentences {
		i, s := i, s
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			out[i] = t.Sentence(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
