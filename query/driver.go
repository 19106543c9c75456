package query

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"bplusstore/bptree"
)

// Driver dispatches decoded Commands against a tree and renders results in
// the legacy line-protocol's textual form.
type Driver struct {
	Tree *bptree.Tree
}

// NewDriver wraps tree in a Driver.
func NewDriver(tree *bptree.Tree) *Driver {
	return &Driver{Tree: tree}
}

// Dispatch executes cmd against the driver's tree, writing protocol output
// to out. p and l produce no output; g prints the value or a bare newline
// on absence (spec.md §6.1's legacy collapse); r prints one value per line.
func (d *Driver) Dispatch(cmd Command, out io.Writer) error {
	switch cmd.Verb {
	case Put:
		d.Tree.Insert(cmd.Key, cmd.Val)
		return nil

	case Get:
		v, err := d.Tree.Find(cmd.Key)
		if errors.Is(err, bptree.ErrNotFound) {
			fmt.Fprintln(out)
			return nil
		}
		fmt.Fprintln(out, v)
		return nil

	case Range:
		for _, v := range d.Tree.Range(cmd.Low, cmd.High) {
			fmt.Fprintln(out, v)
		}
		return nil

	case Debug:
		fmt.Fprintln(out, d.Tree.String())
		s := d.Tree.Stats()
		fmt.Fprintf(out, "height=%d internal=%d leaves=%d keys=%d order=%d capacity=%d\n",
			s.Height, s.InternalNode, s.LeafNodes, s.TotalKeys, s.Order, s.Capacity)
		return nil

	case Load:
		return fmt.Errorf("%w: l %s", ErrUnsupported, cmd.Path)

	default:
		return fmt.Errorf("query: unrecognized verb %v", cmd.Verb)
	}
}

// Run reads newline-terminated commands from in, dispatches each to the
// driver, and writes protocol output to out. Parse errors and unsupported
// commands are logged as warnings and do not affect tree state or halt
// the loop — unrecognised lines never reach Dispatch.
func (d *Driver) Run(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		cmd, err := Parse(line)
		if err != nil {
			slog.Warn("query: parse error", "line", line, "err", err)
			continue
		}

		if err := d.Dispatch(cmd, out); err != nil {
			slog.Warn("query: dispatch error", "line", line, "err", err)
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("query: input read error", "err", err)
	}
}
