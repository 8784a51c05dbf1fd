package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// parseValues converts command arguments into integers.
func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	op := strings.ToLower(args[0])
	values, err := parseValues(args[1:])
	if err != nil {
		return err
	}

	target := 0
	if op == "count" {
		if len(values) == 0 {
			return fmt.Errorf("count needs a value to look for")
		}
		target, values = values[0], values[1:]
	}

	a, err := newArena()
	if err != nil {
		return err
	}
	l, err := a.CreateList(values)
	if err != nil {
		return fmt.Errorf("failed to build list: %w", err)
	}
	defer func() { a.Clear(l) }()

	out := cmd.OutOrStdout()
	switch op {
	case "sort":
		l = a.Sort(l)
		fmt.Fprintln(out, a.Format(l))
	case "reverse":
		l = a.Reverse(l)
		fmt.Fprintln(out, a.Format(l))
	case "max":
		fmt.Fprintln(out, a.Max(l))
	case "min":
		fmt.Fprintln(out, a.Min(l))
	case "length":
		fmt.Fprintln(out, a.Length(l))
	case "count":
		fmt.Fprintln(out, a.Count(l, target))
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return nil
}
