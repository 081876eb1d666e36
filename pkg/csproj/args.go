package csproj

import (
	"fmt"
	"strings"
)

// WantsHelp reports whether args asks for the usage text: an empty list or a
// -h/--help token anywhere, in any casing.
func WantsHelp(args []string) bool {
	if len(args) == 0 {
		return true
	}
	for _, arg := range args {
		lower := strings.ToLower(arg)
		if lower == "-h" || lower == "--help" {
			return true
		}
	}
	return false
}

// ParseArgs validates the raw command-line tokens and resolves the target
// project file. dir is the directory searched when no path is given.
//
// Accepted forms:
//
//	--get <KEY> [PATH]
//	--set <KEY>=<VALUE> [PATH]
func ParseArgs(args []string, dir string) (Invocation, error) {
	if WantsHelp(args) {
		return Invocation{Command: CommandHelp}, nil
	}
	if len(args) < 2 {
		return Invocation{}, ErrInsufficientArguments
	}

	var inv Invocation
	switch strings.TrimPrefix(args[0], "--") {
	case "get":
		inv.Command = CommandGet
	case "set":
		inv.Command = CommandSet
	default:
		return Invocation{}, fmt.Errorf("%w: %q", ErrInvalidCommand, args[0])
	}

	rawKey := args[1]
	if inv.Command == CommandSet {
		key, value, ok := strings.Cut(args[1], "=")
		if !ok {
			return Invocation{}, ErrInvalidKeyValueFormat
		}
		rawKey = key
		inv.Value = strings.ReplaceAll(value, `"`, "")
	}

	key, ok := LookupField(rawKey)
	if !ok {
		return Invocation{}, fmt.Errorf("%w: %q", ErrUnrecognizedKey, rawKey)
	}
	inv.Key = key

	// Key is validated before touching the filesystem
	var err error
	if len(args) >= 3 {
		inv.Path, err = CheckPath(args[2])
	} else {
		inv.Path, err = Discover(dir)
	}
	if err != nil {
		return Invocation{}, err
	}

	return inv, nil
}
