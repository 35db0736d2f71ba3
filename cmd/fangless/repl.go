package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"fangless/eval"
	"fangless/parser"
	"fangless/types"
)

const (
	promptMain  = ">>> "
	promptCont  = "... "
	historyFile = ".fangless_history"
)

func historyPath() string {
	if p := os.Getenv("FANGLESS_HISTORY"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func cmdRepl(args []string) int {
	fs := newFlagSet("repl", "")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	histPath := historyPath()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

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

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	evaluator := eval.NewEvaluator(os.Stdout)
	for {
		src, ok := readStatement(ln)
		if !ok {
			fmt.Println()
			return 0
		}

		line := strings.TrimSpace(src)
		if line == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if strings.HasPrefix(line, ":") {
			if quit := replCommand(evaluator, line); quit {
				return 0
			}
			continue
		}

		execInteractive(evaluator, src)
	}
}

// replCommand handles a ":" line; it reports whether to exit
func replCommand(e *eval.Evaluator, line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":vars":
		env := e.GetEnvironment()
		for _, name := range env.Names() {
			v, _ := env.Get(name)
			fmt.Printf("%s = %s\n", name, repr(v))
		}
	default:
		fmt.Println("unknown command. Type :vars or :quit.")
	}
	return false
}

// execInteractive runs src statement by statement, echoing the value of
// every expression statement that is not None
func execInteractive(e *eval.Evaluator, src string) {
	stmts, err := parser.ParseString(src)
	if err != nil {
		printError(err)
		return
	}
	for _, stmt := range stmts {
		out, err := e.Exec(stmt)
		if err != nil {
			printError(err)
			return
		}
		if out.Bound == "" && out.Value != nil && out.Value.Type() != types.TYPE_NONE {
			fmt.Println(repr(out.Value))
		}
	}
}

// readStatement reads lines until they parse or fail for a reason more
// input cannot fix
func readStatement(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C drops the pending input
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := parser.ParseString(src); err != nil && parser.IsIncomplete(err) && line != "" {
			continue
		}
		return src, true
	}
}

// repr renders v for echoing; strings are quoted
func repr(v types.Value) string {
	if s, ok := v.(types.StrValue); ok {
		return strconv.Quote(s.String())
	}
	return types.Canonical(v)
}
