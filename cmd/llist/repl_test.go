package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScript feeds lines to a fresh REPL and returns everything it printed.
func runScript(t *testing.T, lines ...string) (string, *REPL) {
	t.Helper()
	a, err := newArena()
	require.NoError(t, err)

	var out bytes.Buffer
	r := newREPL(a, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	r.run()
	return out.String(), r
}

func TestREPLBuildAndSort(t *testing.T) {
	setupGlobals(t)

	out, r := runScript(t,
		"new 5 3 5 1 4",
		"sort",
		"stats",
	)
	assert.Contains(t, out, "Created list with 5 nodes")
	assert.Contains(t, out, "list:  [1, 3, 4, 5, 5]")
	assert.Contains(t, out, "Length: 5")
	assert.Contains(t, out, "Min: 1, Max: 5")
	assert.Equal(t, []int{1, 3, 4, 5, 5}, r.arena.ToSlice(r.list))
}

func TestREPLInsertions(t *testing.T) {
	setupGlobals(t)

	_, r := runScript(t,
		"new 2 4",
		"push 1",
		"append 6",
		"after 1 3",
		"before 4 5",
	)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, r.arena.ToSlice(r.list))
}

func TestREPLBeforeHeadIsRefused(t *testing.T) {
	setupGlobals(t)

	out, r := runScript(t,
		"new 1 2 3",
		"before 0 9",
	)
	assert.Contains(t, out, "Not inserted")
	assert.Equal(t, []int{1, 2, 3}, r.arena.ToSlice(r.list))
	assert.Equal(t, 3, r.arena.Stats().LiveNodes, "refused node should be released")
}

func TestREPLSplitAndJoin(t *testing.T) {
	setupGlobals(t)

	out, r := runScript(t,
		"new 1 2 3 4",
		"split 2",
		"reverse",
		"join",
	)
	assert.Contains(t, out, "spare: [3, 4]")
	assert.Equal(t, []int{2, 1, 3, 4}, r.arena.ToSlice(r.list))
	assert.True(t, r.arena.IsEmpty(r.spare))
}

func TestREPLRemoveReleasesNode(t *testing.T) {
	setupGlobals(t)

	out, r := runScript(t,
		"new 1 2 3",
		"remove 2",
		"remove 9",
	)
	assert.Contains(t, out, "list:  [1, 3]")
	assert.Contains(t, out, "Value 9 not found")
	assert.Equal(t, 2, r.arena.Stats().LiveNodes)
}

func TestREPLQueries(t *testing.T) {
	setupGlobals(t)

	out, _ := runScript(t,
		"new 4 7 7 9",
		"find 7",
		"find 8",
		"count 7",
		"set 9 1",
	)
	assert.Contains(t, out, "Value 7 found at index 1")
	assert.Contains(t, out, "Value 8 not found")
	assert.Contains(t, out, "Value 7 occurs 2 times")
	assert.Contains(t, out, "list:  [4, 7, 7, 1]")
}

func TestREPLBadInput(t *testing.T) {
	setupGlobals(t)

	out, r := runScript(t,
		"new 1 x",
		"after 9 1",
		"push",
		"frobnicate",
		"quit",
		"new 1 2 3",
	)
	assert.Contains(t, out, "Invalid number")
	assert.Contains(t, out, "Index out of range")
	assert.Contains(t, out, "Usage: push|append <value>")
	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Contains(t, out, "Goodbye!")
	assert.True(t, r.arena.IsEmpty(r.list), "commands after quit must not run")
}

func TestREPLClear(t *testing.T) {
	setupGlobals(t)

	out, r := runScript(t,
		"new 1 2 3 4",
		"split 2",
		"clear",
	)
	assert.Contains(t, out, "Released 4 nodes")
	assert.Equal(t, 0, r.arena.Stats().LiveNodes)
}

func TestRunREPLCommand(t *testing.T) {
	setupGlobals(t)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("new 3 2 1\nsort\n"))
	cmd.SetOut(&out)

	require.NoError(t, runREPL(cmd, nil))
	assert.Contains(t, out.String(), "list:  [1, 2, 3]")
	assert.Contains(t, out.String(), "Goodbye!")
}
