package sentence_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teksti/translit/sentence"
)

func ExampleTransliterator_Sentence() {
	t := sentence.New()
	fmt.Println(t.Sentence("Дженни играет с мяц."))
	// Output: Dženni igrajet s mjats.
}

func TestSentences(t *testing.T) {
	tr := sentence.New()
	in := []string{
		"Сергей говорит",
		"Денис играет",
		"Рассекречены планы выпуска дешевого iPhone",
	}
	out, err := tr.Sentences(in)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	assert.Equal(t, "Sergei govorit", out[0])
	assert.Equal(t, "Deniss igrajet", out[1])
	assert.Equal(t, "Rassekretšenõ planõ võpuska deševogo iPhone", out[2])
}

func TestWordCountPreserved(t *testing.T) {
	tr := sentence.New()
	for _, in := range []string{
		"Сергей говорит на телефоне",
		"одно",
		"",
		"два  пробела",
		" ведущий пробел",
	} {
		out := tr.Sentence(in)
		assert.Equal(t, len(strings.Split(in, " ")), len(strings.Split(out, " ")),
			"word count changed for %q -> %q", in, out)
	}
}

func TestPassThrough(t *testing.T) {
	tr := sentence.New()
	for _, in := range []string{
		"nothing cyrillic here",
		"123 + 456 = 579",
		"",
		"tabs\tstay\tput",
	} {
		assert.Equal(t, in, tr.Sentence(in))
		// and transliteration of Latin text is idempotent
		assert.Equal(t, in, tr.Sentence(tr.Sentence(in)))
	}
}

func TestIdempotentOnOwnOutput(t *testing.T) {
	tr := sentence.New()
	once := tr.Sentence("Горький Подъездов Юрьевец")
	assert.Equal(t, once, tr.Sentence(once))
}

func TestWhitespaceLiteralSplit(t *testing.T) {
	tr := sentence.New()
	// consecutive blanks produce empty words which reproduce as empty
	assert.Equal(t, "a  b", tr.Sentence("а  б"))
	assert.Equal(t, " a", tr.Sentence(" а"))
	assert.Equal(t, "a ", tr.Sentence("а "))
	// a tab is not a word separator; it passes through inside its word
	assert.Equal(t, "a\tb", tr.Sentence("а\tб"))
}

func TestNilInput(t *testing.T) {
	tr := sentence.New()
	_, err := tr.Sentences(nil)
	require.ErrorIs(t, err, sentence.ErrNilInput)
	_, err = tr.SentencesContext(context.Background(), nil)
	require.ErrorIs(t, err, sentence.ErrNilInput)
}

func TestEmptyBatch(t *testing.T) {
	tr := sentence.New()
	out, err := tr.Sentences([]string{})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSentencesContext(t *testing.T) {
	tr := sentence.New()
	in := make([]string, 64)
	for i := range in {
		in[i] = fmt.Sprintf("Сергей номер %d говорит", i)
	}
	sequential, err := tr.Sentences(in)
	require.NoError(t, err)
	concurrent, err := tr.SentencesContext(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, sequential, concurrent)
}

func TestSentencesContextCancelled(t *testing.T) {
	tr := sentence.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tr.SentencesContext(ctx, []string{"Сергей", "Денис"})
	require.ErrorIs(t, err, context.Canceled)
}
