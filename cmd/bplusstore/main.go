// Command bplusstore is the line-protocol driver's CLI front-end: it
// reads "p"/"g"/"r" query lines from a file or from stdin and applies
// them to a fresh in-memory B+ tree. See spec.md §6.3.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"

	"bplusstore/bptree"
	"bplusstore/common"
	"bplusstore/query"
)

var fileFlag = cli.StringFlag{
	Name:  "f",
	Usage: "read commands from `PATH` instead of stdin",
}

func main() {
	app := &cli.App{
		Name:  "bplusstore",
		Usage: "an in-memory B+ tree key/value store",
		Flags: []cli.Flag{&fileFlag},
		// Unknown options are reported but must not alter behaviour
		// (spec.md §6.3): warn and let the run proceed instead of
		// aborting the way cli.App would by default. Flags after the
		// unknown one are not parsed.
		OnUsageError: func(ctx *cli.Context, err error, isSubcommand bool) error {
			slog.Warn("bplusstore: ignoring usage error", "err", err)
			return run(ctx)
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Warn("bplusstore: run error", "err", err)
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		slog.Warn("bplusstore: ignoring extra arguments", "args", ctx.Args().Slice())
	}

	tree := bptree.New(common.DefaultOrder)
	driver := query.NewDriver(tree)

	if path := ctx.String(fileFlag.Name); path != "" {
		f, err := os.Open(path)
		if err != nil {
			slog.Warn("bplusstore: could not open query file", "path", path, "err", err)
			return nil
		}
		defer f.Close()

		driver.Run(f, os.Stdout)
		return nil
	}

	if isTerminal(os.Stdin) {
		runInteractive(driver)
		return nil
	}

	driver.Run(os.Stdin, os.Stdout)
	return nil
}

// runInteractive drives the query loop with line editing and history,
// the way Hareesh108-haruDB's cmd/cli/main.go uses liner for its shell.
func runInteractive(driver *query.Driver) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := historyFilePath()
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	for {
		input, err := line.Prompt("bplusstore> ")
		if err != nil {
			break
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		cmd, perr := query.Parse(input)
		if perr != nil {
			fmt.Fprintln(os.Stderr, perr)
			continue
		}
		if derr := driver.Dispatch(cmd, os.Stdout); derr != nil {
			fmt.Fprintln(os.Stderr, derr)
		}
	}

	if f, err := os.Create(historyPath); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func historyFilePath() string {
	return os.TempDir() + "/.bplusstore_history"
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
