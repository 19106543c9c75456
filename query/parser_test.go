package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePut(t *testing.T) {
	cmd, err := Parse("p 10 20")
	require.NoError(t, err)
	assert.Equal(t, Command{Verb: Put, Key: 10, Val: 20}, cmd)
}

func TestParseGet(t *testing.T) {
	cmd, err := Parse("g 10")
	require.NoError(t, err)
	assert.Equal(t, Command{Verb: Get, Key: 10}, cmd)
}

func TestParseRange(t *testing.T) {
	cmd, err := Parse("r 10 20")
	require.NoError(t, err)
	assert.Equal(t, Command{Verb: Range, Low: 10, High: 20}, cmd)
}

func TestParseLoad(t *testing.T) {
	cmd, err := Parse("l dump.bin")
	require.NoError(t, err)
	assert.Equal(t, Command{Verb: Load, Path: "dump.bin"}, cmd)
}

func TestParseDebug(t *testing.T) {
	cmd, err := Parse(".tree")
	require.NoError(t, err)
	assert.Equal(t, Command{Verb: Debug}, cmd)
}

func TestParseNegativeKeys(t *testing.T) {
	cmd, err := Parse("p -5 -10")
	require.NoError(t, err)
	assert.Equal(t, Command{Verb: Put, Key: -5, Val: -10}, cmd)
}

func TestParseWhitespaceTolerance(t *testing.T) {
	cmd, err := Parse("  g 42  ")
	require.NoError(t, err)
	assert.Equal(t, Command{Verb: Get, Key: 42}, cmd)
}

func TestParseMalformedLine(t *testing.T) {
	for _, line := range []string{"", "   ", "x 1 2", "p 1", "g", "r 1"} {
		_, err := Parse(line)
		assert.Error(t, err, "line %q should fail to parse", line)
	}
}

// TestParseOrderOfPatterns guards against a "g" line being swallowed by a
// pattern tried earlier — original_source/main.c's parseRouteQuery tries patterns in
// a fixed order and the first match wins.
func TestParseOrderOfPatterns(t *testing.T) {
	cmd, err := Parse("g 7")
	require.NoError(t, err)
	assert.Equal(t, Get, cmd.Verb)
	assert.NotEqual(t, Put, cmd.Verb)
}
