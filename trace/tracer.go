package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fangless/types"
)

// Tracer provides builtin call tracing for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// ParseFilters splits a comma separated -trace-filter value into patterns
func ParseFilters(patterns string) []string {
	var filters []string
	for _, f := range strings.Split(patterns, ",") {
		if f = strings.TrimSpace(f); f != "" {
			filters = append(filters, f)
		}
	}
	return filters
}

// matchesFilter checks if a builtin name matches any of the filter patterns
func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func render(v types.Value) string {
	if s, ok := v.(types.StrValue); ok {
		return fmt.Sprintf("%q", s.Value())
	}
	return types.Canonical(v)
}

// Call logs a builtin call
func (t *Tracer) Call(name string, args []types.Value) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	argStrs := make([]string, len(args))
	for i, arg := range args {
		argStrs[i] = render(arg)
	}

	fmt.Fprintf(t.writer, "[TRACE] CALL %s args=[%s]\n", name, strings.Join(argStrs, ", "))
}

// Return logs a builtin return value
func (t *Tracer) Return(name string, result types.Value) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] RETURN %s => %s\n", name, render(result))
}

// Exception logs a failed builtin call
func (t *Tracer) Exception(name string, err error) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var rtErr *types.Error
	if errors.As(err, &rtErr) {
		fmt.Fprintf(t.writer, "[TRACE] EXCEPTION %s %s\n", name, rtErr.Error())
		return
	}
	fmt.Fprintf(t.writer, "[TRACE] EXCEPTION %s %v\n", name, err)
}

// Bind logs an assignment to a variable
func (t *Tracer) Bind(name string, v types.Value) {
	if !t.enabled {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Truncate long renderings for readability
	display := render(v)
	if len(display) > 60 {
		display = display[:57] + "..."
	}

	fmt.Fprintf(t.writer, "[TRACE]   BIND %s = %s\n", name, display)
}

// Global convenience functions

// Call logs a builtin call using the global tracer
func Call(name string, args []types.Value) {
	if globalTracer != nil {
		globalTracer.Call(name, args)
	}
}

// Return logs a builtin return using the global tracer
func Return(name string, result types.Value) {
	if globalTracer != nil {
		globalTracer.Return(name, result)
	}
}

// Exception logs a failed builtin call using the global tracer
func Exception(name string, err error) {
	if globalTracer != nil {
		globalTracer.Exception(name, err)
	}
}

// Bind logs an assignment using the global tracer
func Bind(name string, v types.Value) {
	if globalTracer != nil {
		globalTracer.Bind(name, v)
	}
}
