package csproj

import "errors"

var (
	ErrInsufficientArguments  = errors.New("not enough arguments provided, see the help for more info")
	ErrInvalidCommand         = errors.New("invalid command provided, see the help for more info")
	ErrInvalidKeyValueFormat  = errors.New("invalid key/value provided, see the help for more info")
	ErrUnrecognizedKey        = errors.New("provided key is not valid, see the help for a list of available keys")
	ErrFileNotFound           = errors.New("file not found")
	ErrWrongFileExtension     = errors.New("provided path is not a csproj file")
	ErrAmbiguousFileDiscovery = errors.New("multiple csproj files found in current folder, please specify one")
	ErrNoFileDiscovered       = errors.New("no csproj files were found in the current folder")
	ErrNoGroupsFound          = errors.New("no property groups were found in the csproj file")
)
