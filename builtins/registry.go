package builtins

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"fangless/ops"
	"fangless/trace"
	"fangless/types"
)

// BuiltinFunc is a function type for builtin functions
// Takes the argument values and returns the result or a runtime error
type BuiltinFunc func(args []types.Value) (types.Value, error)

// MutatingFunc is a builtin that changes the container held by a binding.
// The binding is rebound to the updated container.
type MutatingFunc func(target *types.Value, args []types.Value) (types.Value, error)

// ErrUnknownBuiltin is returned when calling a name nothing is registered under
var ErrUnknownBuiltin = errors.New("unknown builtin")

// Variadic marks a builtin with no upper argument bound
const Variadic = -1

// Builtin describes one registered function. Exactly one of Fn and Mut is set.
// For a mutating builtin MinArgs and MaxArgs count the target too.
type Builtin struct {
	Name    string
	MinArgs int
	MaxArgs int
	Fn      BuiltinFunc
	Mut     MutatingFunc
}

// Mutating reports whether the builtin rebinds its first argument
func (b *Builtin) Mutating() bool {
	return b.Mut != nil
}

// checkArity validates the argument count against the declared bounds
func (b *Builtin) checkArity(n int) error {
	if n >= b.MinArgs && (b.MaxArgs == Variadic || n <= b.MaxArgs) {
		return nil
	}
	var want string
	switch {
	case b.MaxArgs == Variadic:
		want = fmt.Sprintf("at least %d", b.MinArgs)
	case b.MinArgs == b.MaxArgs:
		want = fmt.Sprintf("exactly %d", b.MinArgs)
	default:
		want = fmt.Sprintf("from %d to %d", b.MinArgs, b.MaxArgs)
	}
	return types.TypeErrorf("%s() takes %s arguments (%d given)", b.Name, want, n)
}

// Registry holds all registered builtin functions
type Registry struct {
	funcs map[string]*Builtin
	out   io.Writer
}

// NewRegistry creates a new builtin function registry.
// print writes to out; a nil out means os.Stdout.
func NewRegistry(out io.Writer) *Registry {
	if out == nil {
		out = os.Stdout
	}
	r := &Registry{
		funcs: make(map[string]*Builtin),
		out:   out,
	}

	// Conversion and introspection
	r.Register(Builtin{Name: "str", MinArgs: 1, MaxArgs: 1, Fn: builtinStr})
	r.Register(Builtin{Name: "len", MinArgs: 1, MaxArgs: 1, Fn: builtinLen})
	r.Register(Builtin{Name: "type", MinArgs: 1, MaxArgs: 1, Fn: builtinType})
	r.Register(Builtin{Name: "print", MinArgs: 0, MaxArgs: Variadic, Fn: func(args []types.Value) (types.Value, error) {
		return builtinPrint(r.out, args)
	}})

	// Logical
	r.Register(Builtin{Name: "not", MinArgs: 1, MaxArgs: 1, Fn: builtinNot})
	r.Register(Builtin{Name: "and", MinArgs: 2, MaxArgs: 2, Fn: builtinAnd})
	r.Register(Builtin{Name: "or", MinArgs: 2, MaxArgs: 2, Fn: builtinOr})

	// Arithmetic and comparison
	for name, op := range binaryOperators {
		r.Register(Builtin{Name: name, MinArgs: 2, MaxArgs: 2, Fn: binary(op)})
	}
	for name, op := range unaryOperators {
		r.Register(Builtin{Name: name, MinArgs: 1, MaxArgs: 1, Fn: unary(op)})
	}

	// Container builders
	r.Register(Builtin{Name: "list", MinArgs: 0, MaxArgs: Variadic, Fn: builtinList})
	r.Register(Builtin{Name: "tuple", MinArgs: 0, MaxArgs: Variadic, Fn: builtinTuple})
	r.Register(Builtin{Name: "dict", MinArgs: 0, MaxArgs: Variadic, Fn: builtinDict})
	r.Register(Builtin{Name: "set", MinArgs: 0, MaxArgs: 1, Fn: builtinSet})
	r.Register(Builtin{Name: "range", MinArgs: 1, MaxArgs: 3, Fn: builtinRange})

	// Indexing and lookup
	r.Register(Builtin{Name: "getitem", MinArgs: 2, MaxArgs: 2, Fn: builtinGetitem})
	r.Register(Builtin{Name: "contains", MinArgs: 2, MaxArgs: 2, Fn: builtinContains})
	r.Register(Builtin{Name: "sublist", MinArgs: 3, MaxArgs: 3, Fn: builtinSublist})
	r.Register(Builtin{Name: "get", MinArgs: 2, MaxArgs: 2, Fn: builtinGet})

	// In-place mutations
	r.Register(Builtin{Name: "append", MinArgs: 2, MaxArgs: 2, Mut: mutation(ops.MutAppend)})
	r.Register(Builtin{Name: "setadd", MinArgs: 2, MaxArgs: 2, Mut: mutation(ops.MutSetAdd)})
	r.Register(Builtin{Name: "dictadd", MinArgs: 3, MaxArgs: 3, Mut: mutation(ops.MutDictAdd)})
	r.Register(Builtin{Name: "remove", MinArgs: 2, MaxArgs: 2, Mut: mutation(ops.MutRemove)})

	return r
}

// Register adds a builtin function to the registry, replacing any previous
// builtin with the same name
func (r *Registry) Register(b Builtin) {
	r.funcs[b.Name] = &b
}

// Get retrieves a builtin function by name
// Returns (builtin, true) if found, (nil, false) if not found
func (r *Registry) Get(name string) (*Builtin, bool) {
	b, ok := r.funcs[name]
	return b, ok
}

// Has checks if a builtin function is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes a builtin with plain argument values. A mutating builtin
// called this way works on a private copy of its first argument, so the
// caller only sees the returned value.
func (r *Registry) Call(name string, args []types.Value) (types.Value, error) {
	b, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBuiltin, name)
	}
	if b.Mutating() {
		if len(args) == 0 {
			return nil, r.fail(name, b.checkArity(0))
		}
		target := args[0]
		return r.CallMut(name, &target, args[1:])
	}

	trace.Call(name, args)
	if err := b.checkArity(len(args)); err != nil {
		return nil, r.fail(name, err)
	}
	result, err := b.Fn(withNone(args))
	if err != nil {
		return nil, r.fail(name, err)
	}
	trace.Return(name, result)
	return result, nil
}

// CallMut invokes a builtin on a binding. Mutating builtins rebind target;
// any other builtin is called with the bound value as its first argument.
func (r *Registry) CallMut(name string, target *types.Value, args []types.Value) (types.Value, error) {
	b, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBuiltin, name)
	}
	if !b.Mutating() {
		return r.Call(name, append([]types.Value{types.Deref(target)}, args...))
	}

	trace.Call(name, append([]types.Value{types.Deref(target)}, args...))
	if err := b.checkArity(len(args) + 1); err != nil {
		return nil, r.fail(name, err)
	}
	if target == nil {
		return nil, r.fail(name, types.TypeErrorf("%s() requires a bound container", name))
	}
	result, err := b.Mut(target, args)
	if err != nil {
		return nil, r.fail(name, err)
	}
	trace.Return(name, result)
	return result, nil
}

func (r *Registry) fail(name string, err error) error {
	trace.Exception(name, err)
	return err
}

// withNone copies args, replacing nil entries with None
func withNone(args []types.Value) []types.Value {
	out := make([]types.Value, len(args))
	for i, arg := range args {
		out[i] = types.Deref(&arg)
	}
	return out
}
