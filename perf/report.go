package perf

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"fangless/types"
)

// DefaultLocale formats durations with a decimal comma
const DefaultLocale = "de"

// Report writes one "Fibonacci(n): v" line per sample, then every duration
// in seconds with six decimals, using locale's decimal separator.
func Report(w io.Writer, samples []Sample, locale string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	p := message.NewPrinter(tag)

	for _, s := range samples {
		if _, err := fmt.Fprintf(w, "Fibonacci(%d): %s\n", s.N, types.Canonical(s.Value)); err != nil {
			return err
		}
	}
	for _, s := range samples {
		if _, err := fmt.Fprintln(w, FormatSeconds(p, s.Duration.Seconds())); err != nil {
			return err
		}
	}
	return nil
}

// FormatSeconds renders secs the way Report does
func FormatSeconds(p *message.Printer, secs float64) string {
	return p.Sprintf("%v", number.Decimal(secs,
		number.NoSeparator(),
		number.MinFractionDigits(6),
		number.MaxFractionDigits(6)))
}
