package stream

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var vowels = regexp.MustCompile(`[aeiou]`)

func TestFilter_DropsMatchesKeepsOriginalPositions(t *testing.T) {
	f := NewFilter(NewStringSource("banana"), vowels)

	assert.Equal(t, []Token{
		{Value: 'b', Pos: 0},
		{Value: 'n', Pos: 2},
		{Value: 'n', Pos: 4},
	}, collect(f))
}

func TestFilter_AllTokensDropped(t *testing.T) {
	f := NewFilter(NewStringSource("aeiou"), vowels)

	_, ok := f.Next()
	assert.False(t, ok)

	_, ok = f.Next()
	assert.False(t, ok)
}

func TestFilter_NoMatchesPassesThrough(t *testing.T) {
	text := "xyzzy"

	filtered := collect(NewFilter(NewStringSource(text), vowels))
	plain := collect(NewStringSource(text))

	assert.Equal(t, plain, filtered)
}

func TestFilter_ComposesWithOtherFilters(t *testing.T) {
	inner := NewFilter(NewStringSource("a1b2c3"), regexp.MustCompile(`[0-9]`))
	outer := NewFilter(inner, regexp.MustCompile(`a`))

	assert.Equal(t, []Token{
		{Value: 'b', Pos: 2},
		{Value: 'c', Pos: 4},
	}, collect(outer))
}
