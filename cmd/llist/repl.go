package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phroun/linkedlist"
)

// REPL holds the state of the interactive session
type REPL struct {
	arena  *linkedlist.Arena
	list   linkedlist.List
	spare  linkedlist.List // second fragment of the last split
	reader *bufio.Reader
	out    io.Writer
}

func newREPL(a *linkedlist.Arena, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		arena:  a,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func runREPL(cmd *cobra.Command, args []string) error {
	a, err := newArena()
	if err != nil {
		return err
	}

	r := newREPL(a, cmd.InOrStdin(), cmd.OutOrStdout())
	fmt.Fprintln(r.out, "llist REPL - singly-linked list playground")
	fmt.Fprintln(r.out, "Type 'help' for available commands, 'quit' to exit")
	fmt.Fprintln(r.out)

	r.run()

	released := a.Reset()
	logger.Debug("repl finished", zap.Int("released", released))
	return nil
}

// run reads commands until EOF or quit.
func (r *REPL) run() {
	for {
		fmt.Fprint(r.out, "llist> ")
		input, err := r.reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input != "" && !r.handleCommand(input) {
			return
		}
		if err != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Fprintln(r.out, "Goodbye!")
		return false

	case "new":
		r.cmdNew(args)

	case "show":
		r.cmdShow()

	case "push":
		r.cmdInsert(args, r.arena.InsertHead)

	case "append":
		r.cmdInsert(args, r.arena.InsertTail)

	case "after":
		r.cmdAnchored(args, r.arena.InsertAfter)

	case "before":
		r.cmdAnchored(args, r.arena.InsertBefore)

	case "remove":
		r.cmdRemove(args)

	case "split":
		r.cmdSplit(args)

	case "join":
		r.list = r.arena.Concatenate(r.list, r.spare)
		r.spare = linkedlist.List{}
		r.cmdShow()

	case "set":
		r.cmdSet(args)

	case "find":
		r.cmdFind(args)

	case "count":
		r.cmdCount(args)

	case "reverse":
		r.list = r.arena.Reverse(r.list)
		r.cmdShow()

	case "sort":
		r.list = r.arena.Sort(r.list)
		r.cmdShow()

	case "stats":
		r.cmdStats()

	case "clear":
		n := r.arena.Clear(r.list) + r.arena.Clear(r.spare)
		r.list, r.spare = linkedlist.List{}, linkedlist.List{}
		fmt.Fprintf(r.out, "Released %d nodes\n", n)

	default:
		fmt.Fprintf(r.out, "Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

BUILDING:
  new <v...>              Replace the list with the given values
  push <v>                Insert v at the head
  append <v>              Insert v at the tail
  after <idx> <v>         Insert v after the node at index idx
  before <idx> <v>        Insert v before the node at index idx (idx > 0)

REMOVING:
  remove <v>              Remove the first node holding v
  clear                   Release every node

RESHAPING:
  split <v>               Split after the first v; the rest is kept aside
  join                    Append the kept-aside fragment again
  reverse                 Reverse the list
  sort                    Sort the list

INSPECTION:
  show                    Print the list and the kept-aside fragment
  set <old> <new>         Overwrite the first old with new
  find <v>                Report the index of the first v
  count <v>               Count occurrences of v
  stats                   Length, min, max and arena accounting

OTHER:
  help                    Show this help message
  quit, exit              Exit the REPL
`
	fmt.Fprintln(r.out, help)
}

// parseInt parses one argument, reporting problems to the user.
func (r *REPL) parseInt(arg string) (int, bool) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(r.out, "Invalid number: %v\n", err)
		return 0, false
	}
	return v, true
}

// nodeAt returns the node at index i of the current list.
func (r *REPL) nodeAt(i int) (linkedlist.NodeID, bool) {
	cur := r.list.Head()
	if r.arena.IsEmpty(r.list) {
		cur = linkedlist.NoNode
	}
	for ; i > 0 && cur != linkedlist.NoNode; i-- {
		cur = r.arena.Next(cur)
	}
	if i < 0 || cur == linkedlist.NoNode {
		fmt.Fprintln(r.out, "Index out of range")
		return linkedlist.NoNode, false
	}
	return cur, true
}

// newNode allocates a node, reporting allocation failures to the user.
func (r *REPL) newNode(value int) (linkedlist.NodeID, bool) {
	n, err := r.arena.CreateNode(value)
	if err != nil {
		fmt.Fprintf(r.out, "Error creating node: %v\n", err)
		return linkedlist.NoNode, false
	}
	return n, true
}

func (r *REPL) cmdNew(args []string) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, ok := r.parseInt(arg)
		if !ok {
			return
		}
		values = append(values, v)
	}

	r.arena.Clear(r.list)
	r.arena.Clear(r.spare)
	r.list, r.spare = linkedlist.List{}, linkedlist.List{}

	l, err := r.arena.CreateList(values)
	if err != nil {
		fmt.Fprintf(r.out, "Error creating list: %v\n", err)
		return
	}
	r.list = l
	fmt.Fprintf(r.out, "Created list with %d nodes\n", len(values))
}

func (r *REPL) cmdShow() {
	fmt.Fprintf(r.out, "list:  %s\n", r.arena.Format(r.list))
	if !r.arena.IsEmpty(r.spare) {
		fmt.Fprintf(r.out, "spare: %s\n", r.arena.Format(r.spare))
	}
}

func (r *REPL) cmdInsert(args []string, insert func(linkedlist.List, linkedlist.NodeID) linkedlist.List) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: push|append <value>")
		return
	}
	v, ok := r.parseInt(args[0])
	if !ok {
		return
	}
	n, ok := r.newNode(v)
	if !ok {
		return
	}
	r.list = insert(r.list, n)
	r.cmdShow()
}

func (r *REPL) cmdAnchored(args []string, insert func(linkedlist.List, linkedlist.NodeID, linkedlist.NodeID) linkedlist.List) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "Usage: after|before <index> <value>")
		return
	}
	idx, ok := r.parseInt(args[0])
	if !ok {
		return
	}
	v, ok := r.parseInt(args[1])
	if !ok {
		return
	}
	anchor, ok := r.nodeAt(idx)
	if !ok {
		return
	}
	n, ok := r.newNode(v)
	if !ok {
		return
	}
	r.list = insert(r.list, anchor, n)
	if !r.arena.Contains(r.list, n) {
		_ = r.arena.Free(n)
		fmt.Fprintln(r.out, "Not inserted: nothing comes before the head, use push")
		return
	}
	r.cmdShow()
}

func (r *REPL) cmdRemove(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: remove <value>")
		return
	}
	v, ok := r.parseInt(args[0])
	if !ok {
		return
	}

	var removed linkedlist.NodeID
	r.list, removed = r.arena.RemoveValue(r.list, v)
	if removed == linkedlist.NoNode {
		fmt.Fprintf(r.out, "Value %d not found\n", v)
		return
	}
	if err := r.arena.Free(removed); err != nil {
		fmt.Fprintf(r.out, "Error releasing node: %v\n", err)
	}
	r.cmdShow()
}

func (r *REPL) cmdSplit(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: split <value>")
		return
	}
	v, ok := r.parseInt(args[0])
	if !ok {
		return
	}

	var rest linkedlist.List
	r.list, rest = r.arena.SplitAtValue(r.list, v)
	if r.arena.IsEmpty(rest) {
		fmt.Fprintf(r.out, "No split: %d not found or already last\n", v)
		return
	}
	r.arena.Clear(r.spare)
	r.spare = rest
	r.cmdShow()
}

func (r *REPL) cmdSet(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "Usage: set <old> <new>")
		return
	}
	old, ok := r.parseInt(args[0])
	if !ok {
		return
	}
	v, ok := r.parseInt(args[1])
	if !ok {
		return
	}
	r.list = r.arena.SetValueOf(r.list, old, v)
	r.cmdShow()
}

func (r *REPL) cmdFind(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: find <value>")
		return
	}
	v, ok := r.parseInt(args[0])
	if !ok {
		return
	}

	_, found := r.arena.FindValue(r.list, v)
	if found == linkedlist.NoNode {
		fmt.Fprintf(r.out, "Value %d not found\n", v)
		return
	}
	idx := 0
	for cur := r.list.Head(); cur != found; cur = r.arena.Next(cur) {
		idx++
	}
	fmt.Fprintf(r.out, "Value %d found at index %d\n", v, idx)
}

func (r *REPL) cmdCount(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: count <value>")
		return
	}
	v, ok := r.parseInt(args[0])
	if !ok {
		return
	}
	fmt.Fprintf(r.out, "Value %d occurs %d times\n", v, r.arena.Count(r.list, v))
}

func (r *REPL) cmdStats() {
	a := r.arena
	stats := a.Stats()

	fmt.Fprintln(r.out, "List Status:")
	fmt.Fprintf(r.out, "  Length: %d\n", a.Length(r.list))
	fmt.Fprintf(r.out, "  Min: %d, Max: %d\n", a.Min(r.list), a.Max(r.list))
	fmt.Fprintf(r.out, "  Spare length: %d\n", a.Length(r.spare))
	fmt.Fprintln(r.out, "Arena:")
	fmt.Fprintf(r.out, "  ID: %s\n", a.ID())
	fmt.Fprintf(r.out, "  Live nodes: %d (limit: %d)\n", stats.LiveNodes, stats.MaxNodes)
	fmt.Fprintf(r.out, "  Free slots: %d\n", stats.FreeSlots)
	fmt.Fprintf(r.out, "  Allocations: %d, Releases: %d\n", stats.Allocations, stats.Releases)
}
