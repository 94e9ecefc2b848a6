package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/skeleton/internal/model"
	"github.com/shinji-kodama/skeleton/internal/output"
)

// NewListCommand creates the "list" command, which shows the available
// skeleton types and where each one generates files.
func NewListCommand() *cobra.Command {
	var yamlOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available skeleton types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(yamlOutput)
		},
	}
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output in YAML format")

	return cmd
}

func runList(yamlOutput bool) error {
	sets, err := newRegistry().LoadAll()
	if err != nil {
		return model.WrapCLIError(model.KindConfig, "failed to load skeletons", err)
	}

	switch {
	case IsJSONOutput():
		data, _ := json.MarshalIndent(sets, "", "  ")
		output.Println(string(data))
	case yamlOutput:
		data, err := yaml.Marshal(sets)
		if err != nil {
			return model.WrapCLIError(model.KindIO, "failed to encode skeletons", err)
		}
		output.Println(string(data))
	default:
		output.Println(FormatSetsTable(sets))
	}
	return nil
}

// FormatSetsTable renders skeleton sets as an aligned text table.
func FormatSetsTable(sets []model.SkeletonSet) string {
	if len(sets) == 0 {
		return "No skeletons found."
	}

	width := len("TYPE")
	for _, s := range sets {
		if len(s.Type) > width {
			width = len(s.Type)
		}
	}

	out := fmt.Sprintf("%-*s  %-12s  %s", width, "TYPE", "SECTION", "PATH")
	for _, s := range sets {
		path := s.Config.Path
		if path == "" {
			path = "."
		}
		out += fmt.Sprintf("\n%-*s  %-12s  %s", width, s.Type, s.Config.Section, path)
	}
	return out
}
