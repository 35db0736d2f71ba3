package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"fangless/conformance"
	"fangless/eval"
	"fangless/parser"
	"fangless/types"
)

func cmdRun(args []string) int {
	fs := newFlagSet("run", "FILE")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	src, err := openSource(fs.Arg(0))
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	defer src.Close()

	if err := eval.NewEvaluator(os.Stdout).Run(src); err != nil {
		printError(err)
		return 1
	}
	return 0
}

func cmdEval(args []string) int {
	fs := newFlagSet("eval", "SOURCE")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	v, err := eval.NewEvaluator(os.Stdout).ExecString(joinArgs(fs.Args()))
	if err != nil {
		printError(err)
		return 1
	}
	fmt.Println(types.Canonical(v))
	return 0
}

func cmdFmt(args []string) int {
	fs := newFlagSet("fmt", "[-w] FILE")
	write := fs.Bool("w", false, "write the result to the file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	stmts, err := parser.ParseString(string(data))
	if err != nil {
		printError(fmt.Errorf("%s: %w", path, err))
		return 1
	}

	var b strings.Builder
	for _, line := range parser.UnparseProgram(stmts) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if !*write {
		fmt.Print(b.String())
		return 0
	}
	if b.String() == string(data) {
		return 0
	}
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	if err := os.WriteFile(path, []byte(b.String()), info.Mode().Perm()); err != nil {
		log.Printf("%v", err)
		return 1
	}
	return 0
}

func cmdConformance(args []string) int {
	fs := newFlagSet("conformance", "[-v] [-run SUBSTR] DIR")
	verbose := fs.Bool("v", false, "list passing and skipped tests too")
	run := fs.String("run", "", "only run tests whose file/name contains SUBSTR")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	tests, err := conformance.LoadDir(fs.Arg(0))
	if err != nil {
		log.Printf("Failed to load tests: %v", err)
		return 1
	}
	if *run != "" {
		var selected []conformance.LoadedTest
		for _, t := range tests {
			if strings.Contains(t.File+"/"+t.Test.Name, *run) {
				selected = append(selected, t)
			}
		}
		tests = selected
	}

	results := conformance.NewRunner().RunAll(tests)
	for _, r := range results {
		name := r.Test.File + "/" + r.Test.Test.Name
		switch {
		case r.Skipped:
			if *verbose {
				fmt.Printf("SKIP %s: %s\n", name, r.SkipReason)
			}
		case r.Passed:
			if *verbose {
				fmt.Printf("PASS %s\n", name)
			}
		default:
			fmt.Printf("%s %s: %v\n", paint(colorRed, "FAIL"), name, r.Error)
		}
	}

	stats := conformance.ComputeStats(results)
	fmt.Println(conformance.FormatStats(stats))
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
