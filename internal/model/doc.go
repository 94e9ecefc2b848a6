// Package model defines the domain types and value objects for the
// skeleton CLI.
//
// This package contains pure data structures with no external dependencies.
// Skeleton configuration, generation requests, derived targets and the
// per-file generation report are all transient: they live for a single
// invocation and nothing is persisted apart from the generated files.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
