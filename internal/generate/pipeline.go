package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shinji-kodama/skeleton/internal/model"
	"github.com/shinji-kodama/skeleton/internal/naming"
	"github.com/shinji-kodama/skeleton/internal/output"
	"github.com/shinji-kodama/skeleton/internal/render"
	"github.com/shinji-kodama/skeleton/internal/skeleton"
)

// Pipeline generates components from the skeleton sets of a registry.
type Pipeline struct {
	// Registry provides skeleton sets and their config.
	Registry *skeleton.Registry

	// WorkDir is the directory output paths are resolved against.
	// Empty means the process working directory.
	WorkDir string

	// Engine overrides the template engine. Nil uses Handlebars.
	Engine render.Engine

	// OnResult, if set, is called for every handled template file.
	OnResult func(model.FileResult)
}

// New creates a Pipeline for the given registry and working directory.
func New(registry *skeleton.Registry, workDir string) *Pipeline {
	return &Pipeline{Registry: registry, WorkDir: workDir}
}

// Run executes a generation request. The returned report is non-nil
// whenever generation started; err is a *model.CLIError for every failure,
// including a report containing failed files.
func (p *Pipeline) Run(ctx context.Context, req model.GenerationRequest) (*model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	types, err := p.Registry.ListTypes()
	if err != nil {
		return nil, model.WrapCLIError(model.KindUsage, "no skeletons found, run \"skeleton examples\" to install some", err)
	}
	if !skeleton.Has(types, req.ComponentType) {
		return nil, model.NewCLIError(model.KindUsage,
			fmt.Sprintf("Invalid component type: %s, must be one of: %s", req.ComponentType, strings.Join(types, ", ")))
	}

	cfg, err := p.Registry.LoadConfig(req.ComponentType)
	if err != nil {
		return nil, model.WrapCLIError(model.KindConfig,
			fmt.Sprintf("failed to load config for %q", req.ComponentType), err)
	}

	target := naming.Derive(req.RawPath, cfg.Path)
	if target.Name == "" {
		return nil, model.NewCLIError(model.KindUsage,
			fmt.Sprintf("cannot derive a component name from path %q", req.RawPath))
	}

	output.Info("Creating skeleton files",
		"name", target.Name, "path", target.Path, "figma", req.FigmaURL)

	outDir := p.resolve(target.Path)
	if err := p.checkOutputDir(outDir, req.Merge); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, model.WrapCLIError(model.KindIO,
			fmt.Sprintf("failed to create directory %s", outDir), err)
	}

	setDir := p.Registry.SetDir(req.ComponentType)
	if info, statErr := os.Stat(setDir); statErr != nil || !info.IsDir() {
		return nil, model.NewCLIError(model.KindUsage,
			fmt.Sprintf("Skeleton directory %s does not exist", setDir))
	}

	files, err := p.Registry.TemplateFiles(req.ComponentType)
	if err != nil {
		return nil, model.WrapCLIError(model.KindIO, "failed to list templates", err)
	}
	output.Debug("Rendering templates", "type", req.ComponentType, "count", len(files))

	renderer := render.NewRenderer()
	if p.Engine != nil {
		renderer.Engine = p.Engine
	}
	renderer.KeepGoing = req.KeepGoing
	renderer.OnResult = p.OnResult

	rctx := render.NewContext(target.Name, req.ComponentType, cfg.Section, req.FigmaURL)
	report := renderer.Render(setDir, files, outDir, rctx)
	report.Target = target

	if report.Failed() {
		return report, model.WrapCLIError(model.KindGeneration,
			fmt.Sprintf("%d of %d template(s) failed", report.Count(model.FileFailed), len(files)),
			report.FirstError())
	}
	return report, nil
}

// resolve turns a slash-separated target path into a filesystem path
// under WorkDir.
func (p *Pipeline) resolve(path string) string {
	local := filepath.FromSlash(path)
	if p.WorkDir == "" || filepath.IsAbs(local) {
		return local
	}
	return filepath.Join(p.WorkDir, local)
}

// checkOutputDir gates generation on the state of the output directory.
// A missing or empty directory passes. A non-empty one fails unless merge
// is set, in which case it is only logged. Anything that cannot be read
// as a directory fails.
func (p *Pipeline) checkOutputDir(dir string, merge bool) error {
	empty, err := isEmptyDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return model.WrapCLIError(model.KindIO, "Error reading directory", err)
	}
	if empty {
		return nil
	}
	if merge {
		output.Warn("Directory not empty, existing files will be kept", "path", dir)
		return nil
	}
	return model.NewCLIError(model.KindUsage,
		fmt.Sprintf("Directory %s not empty, exiting (use --merge to add missing files)", dir))
}

// isEmptyDir reports whether dir has no entries. It reads at most one
// entry.
func isEmptyDir(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}
