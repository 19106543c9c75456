package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported is returned for commands the protocol recognizes but
// does not implement (currently only "l <path>", spec.md §9).
var ErrUnsupported = errors.New("query: command not supported")

// Parse decodes a single query line into a Command. It mirrors
// original_source/main.c's parseRouteQuery: try each verb's scan pattern
// in turn and route to whichever one matches. A line that matches none of
// them is a parse error and leaves tree state untouched.
func Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Command{}, fmt.Errorf("query: empty line")
	}

	if trimmed == ".tree" {
		return Command{Verb: Debug}, nil
	}

	var a, b int32
	if n, _ := fmt.Sscanf(trimmed, "p %d %d", &a, &b); n == 2 {
		return Command{Verb: Put, Key: a, Val: b}, nil
	}
	if n, _ := fmt.Sscanf(trimmed, "g %d", &a); n == 1 {
		return Command{Verb: Get, Key: a}, nil
	}
	if n, _ := fmt.Sscanf(trimmed, "r %d %d", &a, &b); n == 2 {
		return Command{Verb: Range, Low: a, High: b}, nil
	}
	var path string
	if n, _ := fmt.Sscanf(trimmed, "l %s", &path); n == 1 {
		return Command{Verb: Load, Path: path}, nil
	}

	return Command{}, fmt.Errorf("query: malformed query line %q", line)
}
