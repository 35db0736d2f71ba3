package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"fangless/trace"
)

const appName = "fangless"

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [-trace] [-trace-filter PATTERNS] <command> [args]

Commands:
  repl                         interactive prompt
  run FILE                     execute a program ("-" reads stdin)
  eval SOURCE                  execute SOURCE and print the last value
  fmt [-w] FILE                print the canonical form of a program
  conformance [-v] [-run S] DIR  run the YAML suites in DIR

Flags:
`, appName)
	flag.PrintDefaults()
}

func main() {
	traceEnabled := flag.Bool("trace", false, "Enable execution tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter patterns (comma separated globs, e.g. 'add,set*')")
	flag.Usage = usage
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix(appName + ": ")

	if *traceEnabled {
		trace.Init(true, trace.ParseFilters(*traceFilter), os.Stderr)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "repl":
		os.Exit(cmdRepl(rest))
	case "run":
		os.Exit(cmdRun(rest))
	case "eval":
		os.Exit(cmdEval(rest))
	case "fmt":
		os.Exit(cmdFmt(rest))
	case "conformance":
		os.Exit(cmdConformance(rest))
	case "help":
		usage()
	default:
		log.Printf("unknown command %q", cmd)
		usage()
		os.Exit(2)
	}
}

// newFlagSet builds a subcommand's flags; parse errors return exit code 2
func newFlagSet(name, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s %s %s\n", appName, name, synopsis)
		fs.PrintDefaults()
	}
	return fs
}

// openSource opens a program file, "-" meaning stdin
func openSource(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// joinArgs rebuilds a program passed as several shell words
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
