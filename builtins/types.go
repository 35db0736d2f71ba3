package builtins

import (
	"fmt"
	"io"

	"fangless/ops"
	"fangless/types"
)

// builtinStr renders a value as a string
// str(value) -> str
func builtinStr(args []types.Value) (types.Value, error) {
	return ops.Str(args[0]), nil
}

// builtinLen returns the length of a string (in bytes) or container
// len(value) -> int
func builtinLen(args []types.Value) (types.Value, error) {
	return ops.Len(args[0])
}

// builtinType returns the type label of a value
// type(value) -> str ("None", "int", "float", "bool", "str", "list", ...)
func builtinType(args []types.Value) (types.Value, error) {
	return types.NewStr(types.TypeName(args[0])), nil
}

// builtinPrint writes the renderings of its arguments, space separated,
// followed by a newline
// print(values...) -> None
func builtinPrint(w io.Writer, args []types.Value) (types.Value, error) {
	var err error
	if len(args) == 1 {
		err = types.Print(w, args[0])
	} else {
		err = types.PrintMany(w, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return types.NewNone(), nil
}
