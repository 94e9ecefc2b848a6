package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shinji-kodama/skeleton/internal/model"
)

// NamePlaceholder is replaced by the component name in template file names.
const NamePlaceholder = "{name}"

// templateSuffixes mark a file name as a template. The first one found is
// removed from the output file name.
var templateSuffixes = []string{".handlebars", ".hbs"}

// OutputFileName maps a template file name to the generated file name:
// the first "{name}" is replaced with name, then the template marker is
// removed.
//
//	{name}.tsx.handlebars → Button.tsx
//	index.ts.hbs          → index.ts
func OutputFileName(templateName, name string) string {
	out := strings.Replace(templateName, NamePlaceholder, name, 1)
	for _, suffix := range templateSuffixes {
		if strings.Contains(out, suffix) {
			return strings.Replace(out, suffix, "", 1)
		}
	}
	return out
}

// Renderer renders the templates of a skeleton set into an output directory.
type Renderer struct {
	// Engine renders template text. Defaults to HandlebarsEngine.
	Engine Engine

	// KeepGoing continues with the remaining templates after a failure.
	KeepGoing bool

	// OnResult, if set, is called as soon as each file is handled.
	OnResult func(model.FileResult)
}

// NewRenderer creates a Renderer using the Handlebars engine.
func NewRenderer() *Renderer {
	return &Renderer{Engine: HandlebarsEngine{}, KeepGoing: true}
}

// Render handles every file in files (names relative to setDir) and
// returns one result per handled file. Files whose output already exists
// are skipped and left untouched.
func (r *Renderer) Render(setDir string, files []string, outDir string, ctx Context) *model.Report {
	report := &model.Report{}
	vars := ctx.Vars()

	for _, file := range files {
		res := r.renderFile(setDir, file, outDir, ctx.Name, vars)
		report.Add(res)
		if r.OnResult != nil {
			r.OnResult(res)
		}
		if res.Status == model.FileFailed && !r.KeepGoing {
			break
		}
	}
	return report
}

func (r *Renderer) renderFile(setDir, file, outDir, name string, vars map[string]interface{}) model.FileResult {
	outPath := filepath.Join(outDir, OutputFileName(file, name))
	res := model.FileResult{Source: file, Output: outPath}

	exists, err := pathExists(outPath)
	if err != nil {
		return failed(res, err)
	}
	if exists {
		res.Status = model.FileSkipped
		return res
	}

	srcPath := filepath.Join(setDir, file)
	source, err := os.ReadFile(srcPath)
	if err != nil {
		return failed(res, fmt.Errorf("failed to read template %s: %w", srcPath, err))
	}

	engine := r.Engine
	if engine == nil {
		engine = HandlebarsEngine{}
	}
	text, err := engine.Render(string(source), vars)
	if err != nil {
		return failed(res, fmt.Errorf("failed to render %s: %w", srcPath, err))
	}

	if err := writeNew(outPath, []byte(text)); err != nil {
		return failed(res, err)
	}

	res.Status = model.FileCreated
	return res
}

func failed(res model.FileResult, err error) model.FileResult {
	res.Status = model.FileFailed
	res.Err = err
	return res
}

// pathExists reports whether anything exists at path, without following
// a final symlink.
func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

// writeNew creates path exclusively and writes data to it. It fails rather
// than truncating a file that appeared after the existence check.
func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
