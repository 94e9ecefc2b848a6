// Package model defines the domain types for the skeleton CLI.
//
// These types are used throughout the application for passing data between
// the registry, the renderer, the generation pipeline and the CLI layer.
package model

import (
	"fmt"
	"strings"
)

// Default values applied to every skeleton configuration before the
// per-type config file is overlaid on top of them.
const (
	// DefaultSection is the display section used when config omits "section".
	DefaultSection = "Components"

	// DefaultPath is the output path prefix used when config omits "path".
	DefaultPath = "components"
)

// SkeletonConfig is the per-type configuration record loaded from
// .skeleton/<type>/config.json (or config.yaml).
//
// Config files are decoded into a value that already holds the defaults,
// so keys absent from the file keep their default value.
type SkeletonConfig struct {
	// Section is the display section passed to templates as {{section}}.
	Section string `json:"section" yaml:"section"`

	// Path is the output path prefix. An explicit empty string disables it.
	Path string `json:"path" yaml:"path"`
}

// DefaultSkeletonConfig returns a config populated with the defaults.
func DefaultSkeletonConfig() SkeletonConfig {
	return SkeletonConfig{
		Section: DefaultSection,
		Path:    DefaultPath,
	}
}

// SkeletonSet describes one discovered template-set directory.
type SkeletonSet struct {
	// Type is the directory name, used as the component type on the CLI.
	Type string `json:"type" yaml:"type"`

	// Dir is the filesystem path of the set.
	Dir string `json:"dir" yaml:"dir"`

	// Config is the resolved (defaults + file) configuration.
	Config SkeletonConfig `json:"config" yaml:"config"`
}

// GenerationRequest is built from the positional CLI arguments.
type GenerationRequest struct {
	// ComponentType must match one of the discovered skeleton set names.
	ComponentType string

	// RawPath is the positional path argument, possibly containing "/".
	RawPath string

	// FigmaURL is optional and defaults to the empty string.
	FigmaURL string

	// Merge allows generating into an existing non-empty directory.
	// Pre-existing files are still never overwritten.
	Merge bool

	// KeepGoing continues rendering the remaining templates after a
	// template fails. The failure is still reported.
	KeepGoing bool
}

// Target is the derived component name and output directory.
type Target struct {
	// Name is the capitalized component name.
	Name string `json:"name"`

	// Path is the slash-separated output directory, including the
	// config path prefix.
	Path string `json:"path"`
}

// FileStatus is the outcome of rendering a single template file.
type FileStatus string

const (
	// FileCreated indicates the output file was written.
	FileCreated FileStatus = "created"

	// FileSkipped indicates the output file already existed and was left
	// untouched.
	FileSkipped FileStatus = "skipped"

	// FileFailed indicates reading, rendering or writing the file failed.
	FileFailed FileStatus = "failed"
)

// String returns the string representation of FileStatus.
func (s FileStatus) String() string {
	return string(s)
}

// IsValid checks whether the FileStatus value is one of the defined outcomes.
func (s FileStatus) IsValid() bool {
	switch s {
	case FileCreated, FileSkipped, FileFailed:
		return true
	default:
		return false
	}
}

// ParseFileStatus converts a string to a FileStatus.
func ParseFileStatus(s string) (FileStatus, error) {
	status := FileStatus(strings.ToLower(s))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid file status: %q (valid: created, skipped, failed)", s)
	}
	return status, nil
}

// FileResult records what happened to one template file.
type FileResult struct {
	// Source is the template file name inside the skeleton set.
	Source string `json:"source"`

	// Output is the path the rendered file was (or would have been) written to.
	Output string `json:"output"`

	// Status is the outcome.
	Status FileStatus `json:"status"`

	// Err is set when Status is FileFailed.
	Err error `json:"-"`
}

// Report collects per-file results of one generation run.
type Report struct {
	// Target is the derived name and output directory.
	Target Target `json:"target"`

	// Results are in template directory-listing order.
	Results []FileResult `json:"results"`
}

// Add appends a result to the report.
func (r *Report) Add(res FileResult) {
	r.Results = append(r.Results, res)
}

// Count returns how many results have the given status.
func (r *Report) Count(status FileStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Failed reports whether any template failed.
func (r *Report) Failed() bool {
	return r.Count(FileFailed) > 0
}

// FirstError returns the error of the first failed result, or nil.
func (r *Report) FirstError() error {
	for _, res := range r.Results {
		if res.Status == FileFailed {
			return res.Err
		}
	}
	return nil
}

// ExitCode defines the CLI exit codes. Every user-visible failure of this
// tool maps to ExitGeneralError; the kind of failure is carried separately
// by ErrorKind.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates any failure.
	ExitGeneralError ExitCode = 1
)

// ErrorKind classifies failures for reporting.
type ErrorKind string

const (
	// KindUsage covers invalid component types, empty names, bootstrap
	// conflicts and non-empty output directories. Nothing has been written.
	KindUsage ErrorKind = "usage"

	// KindConfig covers missing or malformed skeleton configuration.
	// Nothing has been written.
	KindConfig ErrorKind = "config"

	// KindIO covers filesystem failures outside of template rendering.
	KindIO ErrorKind = "io"

	// KindGeneration covers one or more templates that failed to render.
	// Files produced before the failure are left in place.
	KindGeneration ErrorKind = "generation"
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Kind classifies the failure.
	Kind ErrorKind

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with exit code 1 and the given kind.
func NewCLIError(kind ErrorKind, message string) *CLIError {
	return &CLIError{Code: ExitGeneralError, Kind: kind, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(kind ErrorKind, message string, err error) *CLIError {
	return &CLIError{Code: ExitGeneralError, Kind: kind, Message: message, Err: err}
}
