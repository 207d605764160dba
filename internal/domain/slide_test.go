package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlideSequence(t *testing.T) {
	t.Run("empty is rejected", func(t *testing.T) {
		_, err := NewSlideSequence(nil)
		require.ErrorIs(t, err, ErrEmptySequence)
		_, err = NewSlideSequence([]Slide{})
		require.ErrorIs(t, err, ErrEmptySequence)
	})

	t.Run("copies input", func(t *testing.T) {
		in := []Slide{{Description: "a"}, {Description: "b"}}
		seq, err := NewSlideSequence(in)
		require.NoError(t, err)
		in[0].Description = "changed"
		assert.Equal(t, 2, seq.Len())
		assert.Equal(t, "a", seq.At(0).Description)
		assert.Equal(t, "b", seq.At(1).Description)
	})

	t.Run("Slides returns a copy", func(t *testing.T) {
		seq, err := NewSlideSequence([]Slide{{Description: "a"}})
		require.NoError(t, err)
		out := seq.Slides()
		out[0].Description = "changed"
		assert.Equal(t, "a", seq.At(0).Description)
	})
}
