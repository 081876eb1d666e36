// Package csproj reads and writes metadata fields of .NET project files.
package csproj

import "strings"

// Extension is the file extension of the project files this package edits.
const Extension = ".csproj"

// GroupTag is the element that holds metadata fields in a project file.
const GroupTag = "PropertyGroup"

// Placeholder is replaced with a field's previous value when setting it.
const Placeholder = "#&VALUE"

// Field is the canonical name of a recognized metadata field.
type Field string

const (
	FieldAuthors         Field = "Authors"
	FieldCompany         Field = "Company"
	FieldDescription     Field = "Description"
	FieldCopyright       Field = "Copyright"
	FieldVersion         Field = "Version"
	FieldAssemblyVersion Field = "AssemblyVersion"
	FieldFileVersion     Field = "FileVersion"
	FieldPackageTags     Field = "PackageTags"
)

var fields = []Field{
	FieldAuthors,
	FieldCompany,
	FieldDescription,
	FieldCopyright,
	FieldVersion,
	FieldAssemblyVersion,
	FieldFileVersion,
	FieldPackageTags,
}

// Fields returns the recognized fields in declaration order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// LookupField matches name case-insensitively against the recognized fields
// and returns the field in its canonical casing.
func LookupField(name string) (Field, bool) {
	for _, f := range fields {
		if strings.EqualFold(string(f), name) {
			return f, true
		}
	}
	return "", false
}

// Command is the operation requested on the command line.
type Command int

const (
	CommandHelp Command = iota + 1
	CommandGet
	CommandSet
)

// String returns the command-line spelling of the command.
func (c Command) String() string {
	switch c {
	case CommandGet:
		return "get"
	case CommandSet:
		return "set"
	case CommandHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Invocation is a validated command line.
// Value is only meaningful for CommandSet; Key and Path are empty for CommandHelp.
type Invocation struct {
	Command Command
	Key     Field
	Value   string
	Path    string
}
