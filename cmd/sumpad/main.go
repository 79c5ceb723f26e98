// Command sumpad evaluates calculation notes from the terminal.
//
//	sumpad run note.txt      evaluate a note file (or stdin) line by line
//	sumpad repl              interactive session over a growing note
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"

	sumpad "github.com/sjmcnamara/sum-sub000"
)

const (
	historyFile = ".sumpad_history"
	promptMain  = "==> "
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	log.SetFlags(0)
	log.SetPrefix("sumpad: ")

	app := &cli.App{
		Name:    "sumpad",
		Usage:   "natural-language calculator notes",
		Version: sumpad.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "lang",
				Value: "en",
				Usage: "note language (en, es, pt)",
			},
			&cli.IntFlag{
				Name:  "precision",
				Value: 0,
				Usage: "fixed decimal places (2, 4 or 6; 0 trims automatically)",
			},
			&cli.BoolFlag{
				Name:  "no-grouping",
				Usage: "disable thousands separators in output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "evaluate a note file (stdin when no file is given)",
				ArgsUsage: "[file]",
				Action:    cmdRun,
			},
			{
				Name:   "repl",
				Usage:  "interactive session",
				Action: cmdRepl,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func options(c *cli.Context) (sumpad.Options, sumpad.FormatConfig) {
	kw := sumpad.ForLanguage(c.String("lang"))
	opts := sumpad.Options{Keywords: kw}
	cfg := sumpad.FormatConfig{
		ThousandsSeparator: !c.Bool("no-grouping"),
		Precision:          c.Int("precision"),
		Keywords:           kw,
	}
	return opts, cfg
}

func cmdRun(c *cli.Context) error {
	var (
		src []byte
		err error
	)
	if c.Args().Len() > 0 {
		src, err = os.ReadFile(c.Args().First())
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	opts, cfg := options(c)
	doc := sumpad.EvaluateDocument(string(src), opts)

	failed := false
	for i, line := range doc.Lines {
		switch {
		case line.Err != nil:
			failed = true
			fmt.Fprint(os.Stderr, sumpad.PrettyLineError(i+1, line.Text, line.Err.Msg))
		case line.Value != nil:
			fmt.Printf("%s = %s\n", line.Text, sumpad.Format(*line.Value, cfg))
		default:
			fmt.Println(line.Text)
		}
	}
	if failed {
		return errors.New("some lines failed to evaluate")
	}
	return nil
}

func cmdRepl(c *cli.Context) error {
	fmt.Printf("sumpad %s\nCtrl+D exits. Type :quit to exit, :clear to start over.\n", sumpad.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	opts, cfg := options(c)

	// The whole note is re-evaluated after each entry, matching the
	// engine's full-recompute model.
	var note []string
	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			continue
		}

		switch strings.TrimSpace(strings.ToLower(line)) {
		case ":quit":
			return nil
		case ":clear":
			note = nil
			continue
		}

		note = append(note, line)
		ln.AppendHistory(line)

		doc := sumpad.EvaluateDocument(strings.Join(note, "\n"), opts)
		last := doc.Lines[len(doc.Lines)-1]
		switch {
		case last.Err != nil:
			fmt.Println(red(last.Err.Msg))
		case last.Value != nil:
			out := sumpad.Format(*last.Value, cfg)
			if last.Variable != "" {
				out = last.Variable + " = " + out
			}
			fmt.Println(blue(out))
		case strings.Contains(line, "#") || strings.Contains(line, "//"):
			fmt.Println(green(line))
		}
	}
}
