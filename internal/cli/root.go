// Package cli implements the cobra-based CLI commands for skeleton.
//
// The root command itself runs generation mode:
//
//	skeleton <componentType> <path> [figmaUrl]
//
// Subcommands (generate, examples, list) are defined in their own files.
// This file defines the root command, global flags and exit handling.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/skeleton/internal/model"
	"github.com/shinji-kodama/skeleton/internal/output"
	"github.com/shinji-kodama/skeleton/internal/skeleton"
)

// Global flag variables shared across all subcommands.
var (
	// jsonOutput switches command results and errors to JSON.
	jsonOutput bool

	// verbose enables debug logging with timestamps.
	verbose bool

	// skeletonRoot is the directory holding the skeleton sets.
	skeletonRoot string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	flags := &generateFlags{}

	rootCmd := &cobra.Command{
		Use:   "skeleton <componentType> <path> [figmaUrl]",
		Short: "Scaffold UI component files from skeleton templates",
		Long: `skeleton generates boilerplate source files for UI components from the
template sets ("skeletons") found in .skeleton/<type>/.

Template file names may contain {name}; a .handlebars suffix marks the
file as a template and is removed from the output name. Existing files
are never overwritten.

Examples:
  skeleton examples
  skeleton component button
  skeleton component forms/textInput
  skeleton component card "https://figma.com/file/abc?node-id=1-2"`,

		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			return cobra.RangeArgs(2, 3)(cmd, args)
		},

		// SilenceUsage and SilenceErrors leave error output to Execute.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(verbose)
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runGenerate(cmd, args, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&skeletonRoot, "root", skeleton.DefaultRoot, "Skeleton root directory")
	flags.register(rootCmd)

	rootCmd.AddCommand(NewGenerateCommand())
	rootCmd.AddCommand(NewExamplesCommand())
	rootCmd.AddCommand(NewListCommand())

	return rootCmd
}

// Execute runs the root command and exits the process on failure.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(int(reportError(err)))
	}
}

// reportError prints err and returns the exit code it maps to.
func reportError(err error) model.ExitCode {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(string(cliErr.Kind), cliErr.Message, cliErr.Err)
		return cliErr.Code
	}

	printError("", err.Error(), nil)
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(kind, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"message": message,
		}
		if kind != "" {
			errObj["kind"] = kind
		}
		if underlying != nil {
			errObj["detail"] = underlying.Error()
		}
		data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// VerboseLog logs a debug message; it is shown only with --verbose.
func VerboseLog(format string, args ...interface{}) {
	output.Debug(fmt.Sprintf(format, args...))
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}

func newRegistry() *skeleton.Registry {
	return skeleton.NewRegistry(skeletonRoot)
}
