package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairsSplitsAlternatingArgs(t *testing.T) {
	cmd := &buildCmd{Items: []string{"avl", "moby-dick", "rbt", "frankenstein"}}
	pairs, err := cmd.pairs()
	require.NoError(t, err)
	assert.Equal(t, []structureStemPair{
		{structure: "avl", stem: "moby-dick"},
		{structure: "rbt", stem: "frankenstein"},
	}, pairs)
}

func TestPairsRejectsOddArgCount(t *testing.T) {
	cmd := &buildCmd{Items: []string{"avl", "moby-dick", "rbt"}}
	_, err := cmd.pairs()
	assert.Error(t, err)
}
