package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

var (
	colorOnce    sync.Once
	colorEnabled bool
)

func useColor() bool {
	colorOnce.Do(func() {
		colorEnabled = detectColor(os.Stdout)
	})
	return colorEnabled
}

func detectColor(f *os.File) bool {
	// https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// paint wraps s in color when stdout is a terminal
func paint(color, s string) string {
	if !useColor() {
		return s
	}
	return color + s + colorReset
}

// printError reports a failed program the way the runtime names errors
func printError(err error) {
	fmt.Println(paint(colorRed, "Traceback: "+err.Error()))
}
