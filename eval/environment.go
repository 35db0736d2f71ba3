package eval

import (
	"sort"

	"fangless/types"
)

// Environment holds the variable bindings of a program. Each name owns one
// binding slot, which mutating operations rebind in place.
type Environment struct {
	vars map[string]*types.Value
}

// NewEnvironment creates an empty environment
func NewEnvironment() *Environment {
	return &Environment{
		vars: make(map[string]*types.Value),
	}
}

// Get looks up a variable by name
// Returns (value, true) if found, (nil, false) if not found
func (e *Environment) Get(name string) (types.Value, bool) {
	slot, ok := e.vars[name]
	if !ok {
		return nil, false
	}
	return types.Deref(slot), true
}

// Set binds name to value, creating the variable if it doesn't exist
func (e *Environment) Set(name string, value types.Value) {
	if slot, ok := e.vars[name]; ok {
		*slot = value
		return
	}
	e.vars[name] = &value
}

// Binding returns the slot bound to name, for operations that rebind it
func (e *Environment) Binding(name string) (*types.Value, bool) {
	slot, ok := e.vars[name]
	return slot, ok
}

// Names returns the bound variable names in sorted order
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
