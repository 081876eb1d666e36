package csproj

import (
	"fmt"
	"io"
)

// Name is the command name shown in the usage text.
const Name = "csproj"

// WriteUsage writes the help text to w.
func WriteUsage(w io.Writer) error {
	_, err := fmt.Fprintf(w, `Usage: %[1]s --get <KEY> [PATH_TO_CSPROJ]
       %[1]s --set <KEY>="<VALUE>" [PATH_TO_CSPROJ]

ABOUT
This tool allows you to easily set and get csproj xml values.

PLACEHOLDER
%[2]s inside a --set value is replaced with the value of the key before it is set.
  e.g. %[1]s --set Description="%[2]s (beta)"

KEYS
To make life a little easier the following keys are available to set and get:

`, Name, Placeholder)
	if err != nil {
		return err
	}

	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "-%s\n", f); err != nil {
			return err
		}
	}
	return nil
}
