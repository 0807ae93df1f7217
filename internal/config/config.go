package config

import (
	"os"
	"strconv"
)

// Environment variables supplying flag defaults
const (
	EnvAlwaysPassArgs = "OPENRAW_ALWAYS_PASS_ARGS"
	EnvCopyPath       = "OPENRAW_COPY_PATH"
	EnvVerbose        = "OPENRAW_VERBOSE"
)

// AlwaysPassArgs reports whether extra arguments should also be used when
// only one variant exists. Defaults to false.
func AlwaysPassArgs() bool {
	return envBool(EnvAlwaysPassArgs)
}

// CopyPath reports whether the chosen path is copied to the clipboard
func CopyPath() bool {
	return envBool(EnvCopyPath)
}

// Verbose reports whether debug logging is enabled
func Verbose() bool {
	return envBool(EnvVerbose)
}

// envBool parses a boolean env var; unset or invalid values are false
func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
