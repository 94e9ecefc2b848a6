package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/skeleton/internal/bootstrap"
	"github.com/shinji-kodama/skeleton/internal/model"
	"github.com/shinji-kodama/skeleton/internal/output"
)

// NewExamplesCommand creates the "examples" command, which installs the
// bundled example skeletons into the current directory.
func NewExamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Install the example skeletons into the current directory",
		Long: `Copy the bundled example skeleton sets into ./.skeleton (or --root).

The command refuses to run if the destination already exists; move it out
of the way first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExamples()
		},
	}
}

func runExamples() error {
	err := bootstrap.Install(skeletonRoot, func(path string) {
		VerboseLog("copied %s", path)
		if !IsJSONOutput() {
			output.Println(output.StyleNoun.Render(path))
		}
	})
	if errors.Is(err, bootstrap.ErrDestinationExists) {
		return model.NewCLIError(model.KindUsage,
			fmt.Sprintf("Skeleton already exists at %s. Not overwriting, move it out of the way to install the examples.", skeletonRoot))
	}
	if err != nil {
		return model.WrapCLIError(model.KindIO, "failed to install examples", err)
	}

	output.Println(`Done! Run "skeleton component MyComponentName" to create a component, or "skeleton template MyTemplateName" to setup a template.`)
	return nil
}
