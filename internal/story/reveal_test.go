package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealEmitsEachPrefixThenStops(t *testing.T) {
	r := NewReveal("hi")

	assert.Equal(t, "", r.Current())
	assert.False(t, r.Done())

	assert.Equal(t, "h", r.Advance())
	assert.Equal(t, "hi", r.Advance())
	assert.True(t, r.Done())

	// Further ticks emit nothing new.
	assert.Equal(t, "hi", r.Advance())
	assert.Equal(t, "hi", r.Advance())
}

func TestRevealHandlesMultibyteRunes(t *testing.T) {
	r := NewReveal("día")
	assert.Equal(t, "d", r.Advance())
	assert.Equal(t, "dí", r.Advance())
	assert.Equal(t, "día", r.Advance())
	assert.True(t, r.Done())
}

func TestNewRevealCancelsPrior(t *testing.T) {
	old := NewReveal("texto largo de la página anterior")
	old.Advance()
	old.Advance()

	// Page navigation: the app swaps in a new Reveal; the old one simply
	// stops being driven. The new one starts from empty.
	r := NewReveal("otra página")
	assert.Equal(t, "", r.Current())
	assert.Equal(t, "o", r.Advance())
}

func TestRetargetKeepsPosition(t *testing.T) {
	r := NewReveal("Son las 09:15 aquí")
	for i := 0; i < 12; i++ {
		r.Advance()
	}
	require.Equal(t, "Son las 09:1", r.Current())

	// The clock ticked over; same page, new resolved text.
	r.Retarget("Son las 09:16 aquí")
	assert.Equal(t, "Son las 09:1", r.Current())
	assert.Equal(t, "Son las 09:16", r.Advance())
}

func TestRetargetClampsToShorterText(t *testing.T) {
	r := NewReveal("una frase bastante larga")
	for !r.Done() {
		r.Advance()
	}

	r.Retarget("corta")
	assert.Equal(t, "corta", r.Current())
	assert.True(t, r.Done())
}

func TestRetargetSameTextIsNoop(t *testing.T) {
	r := NewReveal("igual")
	r.Advance()
	r.Retarget("igual")
	assert.Equal(t, "i", r.Current())
}
