package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"fangless/perf"
)

func main() {
	kindName := flag.String("kind", "iter", "Implementation: iter, rec, iter-value, rec-value")
	from := flag.Int("from", 1, "First n")
	to := flag.Int("to", 50, "Last n")
	locale := flag.String("locale", perf.DefaultLocale, "Locale for the duration decimal separator")
	dbPath := flag.String("db", "", "SQLite database to record the run in")
	history := flag.Bool("history", false, "List the runs recorded in -db instead of benchmarking")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("fib: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kind, err := perf.ParseKind(*kindName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var store *perf.Store
	if *dbPath != "" {
		store, err = perf.Open(*dbPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer store.Close()
	}

	if *history {
		if store == nil {
			log.Fatalf("-history needs -db")
		}
		listRuns(ctx, store, kind, *locale)
		return
	}

	samples, err := perf.Bench(ctx, kind, *from, *to)
	if err != nil {
		// Report what finished before an interrupt
		log.Printf("Benchmark stopped: %v", err)
	}
	if err := perf.Report(os.Stdout, samples, *locale); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	if store != nil && len(samples) > 0 {
		id, err := store.Record(context.Background(), &perf.Run{Kind: kind, Samples: samples})
		if err != nil {
			log.Fatalf("Failed to record run: %v", err)
		}
		log.Printf("Recorded run %s in %s", id, store.Path())
	}
}

func listRuns(ctx context.Context, store *perf.Store, kind perf.Kind, locale string) {
	tag, err := language.Parse(locale)
	if err != nil {
		log.Fatalf("Invalid locale %q: %v", locale, err)
	}
	p := message.NewPrinter(tag)

	runs, err := store.Runs(ctx, kind)
	if err != nil {
		log.Fatalf("Failed to read runs: %v", err)
	}
	for _, run := range runs {
		first, last := 0, 0
		if n := len(run.Samples); n > 0 {
			first, last = run.Samples[0].N, run.Samples[n-1].N
		}
		fmt.Printf("%s  %s  %-10s n=%d..%d  total %ss\n",
			run.StartedAt.Format("2006-01-02 15:04:05"), run.ID, run.Kind,
			first, last, perf.FormatSeconds(p, run.Total().Seconds()))
	}
}
