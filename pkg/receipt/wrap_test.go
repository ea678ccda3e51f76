package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapShortName(t *testing.T) {
	assert.Equal(t, []string{"CHICKEN MOMO"}, wrap("CHICKEN MOMO", 20))
}

func TestWrapEmpty(t *testing.T) {
	assert.Equal(t, []string{""}, wrap("", 10))
	assert.Equal(t, []string{""}, wrap("   ", 10))
}

func TestWrapBreaksAtWordBoundaries(t *testing.T) {
	got := wrap("PANEER BUTTER MASALA", 8)
	assert.Equal(t, []string{"PANEER", "BUTTER", "MASALA"}, got)
}

func TestWrapHardBreaksLongWords(t *testing.T) {
	got := wrap("SUPERCALIFRAGILISTIC", 8)
	assert.Equal(t, []string{"SUPERCAL", "IFRAGILI", "STIC"}, got)
	for _, ln := range got {
		assert.LessOrEqual(t, len(ln), 8)
	}
}

func TestWrapNonPositiveWidth(t *testing.T) {
	got := wrap("AB", 0)
	assert.Equal(t, []string{"A", "B"}, got)
}

func TestWrapFitsExactWidth(t *testing.T) {
	got := wrap("ONE TWO", 7)
	assert.Equal(t, []string{"ONE TWO"}, got)
}
