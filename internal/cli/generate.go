package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/skeleton/internal/generate"
	"github.com/shinji-kodama/skeleton/internal/model"
	"github.com/shinji-kodama/skeleton/internal/output"
)

// generateFlags holds the flag values for generation mode.
type generateFlags struct {
	merge     bool // --merge: allow a non-empty output directory
	keepGoing bool // --keep-going: continue after a failed template
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.merge, "merge", false, "Generate into a non-empty directory, keeping existing files")
	cmd.Flags().BoolVar(&f.keepGoing, "keep-going", true, "Continue with remaining templates after a failure")
}

// NewGenerateCommand creates the "generate" command. It is equivalent to
// the root generation mode and keeps types named like a subcommand
// reachable.
func NewGenerateCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate <componentType> <path> [figmaUrl]",
		Short: "Generate component files from a skeleton",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, flags *generateFlags) error {
	req := model.GenerationRequest{
		ComponentType: args[0],
		RawPath:       args[1],
		Merge:         flags.merge,
		KeepGoing:     flags.keepGoing,
	}
	if len(args) > 2 {
		req.FigmaURL = args[2]
	}
	registry := newRegistry()
	VerboseLog("Skeleton root: %s", registry.Root())

	p := generate.New(registry, "")
	if !IsJSONOutput() {
		p.OnResult = func(res model.FileResult) {
			output.Println(output.FormatResult(res))
		}
	}

	report, err := p.Run(cmd.Context(), req)
	if report != nil {
		printReport(report)
	}
	return err
}

func printReport(report *model.Report) {
	if !IsJSONOutput() {
		output.Println(output.FormatSummary(report))
		return
	}

	type fileJSON struct {
		Source string `json:"source"`
		Output string `json:"output"`
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}
	type reportJSON struct {
		Name  string     `json:"name"`
		Path  string     `json:"path"`
		Files []fileJSON `json:"files"`
	}

	result := reportJSON{
		Name:  report.Target.Name,
		Path:  report.Target.Path,
		Files: make([]fileJSON, 0, len(report.Results)),
	}
	for _, res := range report.Results {
		f := fileJSON{Source: res.Source, Output: res.Output, Status: res.Status.String()}
		if res.Err != nil {
			f.Error = res.Err.Error()
		}
		result.Files = append(result.Files, f)
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	output.Println(string(data))
}
