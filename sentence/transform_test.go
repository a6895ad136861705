package sentence_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"

	"github.com/teksti/translit/sentence"
)

func TestTransformString(t *testing.T) {
	tr := sentence.New().Transformer()
	out, _, err := transform.String(tr, "Сергей и Денис")
	require.NoError(t, err)
	assert.Equal(t, "Sergei i Deniss", out)
}

func TestTransformFlushesFinalWord(t *testing.T) {
	tr := sentence.New().Transformer()
	out, _, err := transform.String(tr, "Горький")
	require.NoError(t, err)
	assert.Equal(t, "Gorki", out)
}

func TestTransformReader(t *testing.T) {
	tr := sentence.New().Transformer()
	r := transform.NewReader(strings.NewReader("Подъездов говорит по телефону"), tr)
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Podjezdov govorit po telefonu", string(b))
}

func TestTransformReset(t *testing.T) {
	tr := sentence.New().Transformer()
	out, _, err := transform.String(tr, "Денис")
	require.NoError(t, err)
	require.Equal(t, "Deniss", out)
	tr.Reset()
	out, _, err = transform.String(tr, "Сергей")
	require.NoError(t, err)
	assert.Equal(t, "Sergei", out)
}

func TestTransformPassThrough(t *testing.T) {
	tr := sentence.New().Transformer()
	out, _, err := transform.String(tr, "plain latin text")
	require.NoError(t, err)
	assert.Equal(t, "plain latin text", out)
}
