// Copyright (c) 2026 The rubytree Authors.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

// Command rubytree parses source files and prints their syntax trees, or
// starts an interactive session when run without arguments.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/peterh/liner"

	"github.com/rubytree/rubytree"
	"github.com/rubytree/rubytree/parser"
	"github.com/rubytree/rubytree/repr"
)

const historyFile = ".rubytree_history"

var (
	sexpr = flag.Bool("sexpr", false, "print trees in S-expression form")
	stats = flag.Bool("stats", false, "print node counts and parse times")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		os.Exit(repl())
	}

	ret := 0
	for _, name := range flag.Args() {
		if err := parseFile(name); err != nil {
			fmt.Fprintln(os.Stderr, err)
			ret = 1
		}
	}
	os.Exit(ret)
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: rubytree [flags] [file ...]

Parses each file and prints its syntax tree. Without files, starts an
interactive session.

`)
	flag.PrintDefaults()
}

func parseFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	start := time.Now()
	tree, err := rubytree.ParseFile(name, data)
	if err != nil {
		return err
	}

	if *sexpr {
		fmt.Println(tree.String())
	} else {
		fmt.Print(repr.Dump(tree))
	}
	if *stats {
		fmt.Printf("%s: %s nodes from %s in %s\n",
			name,
			humanize.Comma(int64(tree.Count())),
			humanize.Bytes(uint64(len(data))),
			time.Since(start).Round(time.Microsecond))
	}
	return nil
}

func repl() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Println("rubytree interactive session. Type .help for commands.")
	deep := false

	for {
		src, ok := read(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(src) == "" {
			continue
		}

		if strings.HasPrefix(strings.TrimSpace(src), ".") {
			switch strings.TrimSpace(src) {
			case ".quit", ".exit":
				return 0
			case ".deep":
				deep = !deep
				fmt.Printf("deep dump %s\n", onOff(deep))
			case ".help":
				fmt.Print(".deep  toggle deep structural dumps\n.quit  leave the session\n")
			default:
				fmt.Println("unknown command; type .help")
			}
			continue
		}

		tree, err := rubytree.Parse(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if deep {
			spew.Dump(tree)
		} else {
			fmt.Print(repr.Dump(tree))
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// read collects one input, prompting for continuation lines for as long as
// the parse fails at end of input. A blank continuation line gives up and
// lets the error surface.
func read(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := ">> "
		if b.Len() > 0 {
			prompt = " | "
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl-C abandons the current input, not the session.
			return "", true
		}

		if b.Len() > 0 {
			if line == "" {
				return b.String(), true
			}
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if incomplete(src) {
			continue
		}
		return src, true
	}
}

// incomplete reports whether the parse failed at end of input, the sign of
// a form still waiting for its closing token.
func incomplete(src string) bool {
	_, err := rubytree.Parse(src)
	if err == nil {
		return false
	}
	var perr *parser.Error
	if errors.As(err, &perr) {
		return perr.Offset >= len(src)
	}
	return false
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), historyFile)
	}
	return filepath.Join(home, historyFile)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
