package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexFiltersMatchEverythingByDefault(t *testing.T) {
	var f RegexFilters
	assert.True(t, f.AsFilter("anything at all"))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("^sequence"))
	require.NoError(t, f.MustMatch.Set("timing"))

	assert.True(t, f.AsFilter("sequence equals, pass"))
	assert.True(t, f.AsFilter("timing, 66ms"))
	assert.False(t, f.AsFilter("assert"))
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("fail$"))

	assert.False(t, f.AsFilter("sequence equals, fail"))
	assert.True(t, f.AsFilter("sequence equals, pass"))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var l RegexList
	assert.Error(t, l.Set("("))
}

func TestRegexListString(t *testing.T) {
	var l RegexList
	require.NoError(t, l.Set("a"))
	require.NoError(t, l.Set("b"))
	assert.Equal(t, `"a" or "b"`, l.String())
}
