package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, in string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(in))
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestDeal(t *testing.T) {
	first := run(t, "", "deal", "--seed", "11", "--no-color")
	second := run(t, "", "deal", "--seed", "11", "--no-color")

	assert.Contains(t, first, "Draw pile:")
	assert.Contains(t, first, "Foundations")
	assert.Equal(t, first, second)
}

func TestPlay(t *testing.T) {
	out := run(t, "d\nq\n", "play", "--seed", "11", "--no-color")

	assert.Contains(t, out, "Draw pile:")
	assert.Contains(t, out, "*")
}
