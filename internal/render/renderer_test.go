package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/skeleton/internal/model"
)

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"{name}.tsx.handlebars", "Button.tsx"},
		{"{name}.stories.tsx.handlebars", "Button.stories.tsx"},
		{"index.ts.handlebars", "index.ts"},
		{"index.ts.hbs", "index.ts"},
		{"README.md", "README.md"},
		{"{name}{name}.ts", "Button{name}.ts"},
		{"{name}.handlebars.tsx", "Button.tsx"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputFileName(tt.template, "Button"))
		})
	}
}

func TestHandlebarsEngine(t *testing.T) {
	engine := HandlebarsEngine{}
	vars := NewContext("Card", "component", "Components", "").Vars()

	t.Run("interpolates tokens", func(t *testing.T) {
		out, err := engine.Render("export const {{name}} = ({{{dataName}}}) => {};", vars)
		require.NoError(t, err)
		assert.Equal(t, "export const Card = ({CardData}) => {};", out)
	})

	t.Run("unknown tokens render empty", func(t *testing.T) {
		out, err := engine.Render("[{{missing}}]", vars)
		require.NoError(t, err)
		assert.Equal(t, "[]", out)
	})

	t.Run("malformed template", func(t *testing.T) {
		_, err := engine.Render("{{#if name}}unclosed", vars)
		assert.Error(t, err)
	})
}

// setupSet writes template files into a fresh skeleton set directory.
func setupSet(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRenderer_CreatesFiles(t *testing.T) {
	setDir := setupSet(t, map[string]string{
		"{name}.tsx.handlebars": "export const {{name}} = () => {};",
		"index.ts.handlebars":   "export * from './{{name}}';",
	})
	outDir := t.TempDir()

	var seen []model.FileResult
	r := NewRenderer()
	r.OnResult = func(res model.FileResult) { seen = append(seen, res) }

	report := r.Render(setDir, []string{"{name}.tsx.handlebars", "index.ts.handlebars"}, outDir, NewContext("Card", "component", "Components", ""))

	require.Len(t, report.Results, 2)
	assert.Equal(t, 2, report.Count(model.FileCreated))
	assert.Equal(t, report.Results, seen)

	data, err := os.ReadFile(filepath.Join(outDir, "Card.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "export const Card = () => {};", string(data))

	data, err = os.ReadFile(filepath.Join(outDir, "index.ts"))
	require.NoError(t, err)
	assert.Equal(t, "export * from './Card';", string(data))
}

// TestRenderer_SkipsExisting verifies that existing outputs are never
// overwritten while the remaining files are still generated.
func TestRenderer_SkipsExisting(t *testing.T) {
	setDir := setupSet(t, map[string]string{
		"{name}.tsx.handlebars": "new content",
		"index.ts.handlebars":   "index",
	})
	outDir := t.TempDir()
	existing := filepath.Join(outDir, "Card.tsx")
	require.NoError(t, os.WriteFile(existing, []byte("hand written"), 0o644))

	report := NewRenderer().Render(setDir, []string{"{name}.tsx.handlebars", "index.ts.handlebars"}, outDir, NewContext("Card", "component", "Components", ""))

	require.Len(t, report.Results, 2)
	assert.Equal(t, model.FileSkipped, report.Results[0].Status)
	assert.Equal(t, existing, report.Results[0].Output)
	assert.Equal(t, model.FileCreated, report.Results[1].Status)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "hand written", string(data))
}

func TestRenderer_FailureIsReported(t *testing.T) {
	setDir := setupSet(t, map[string]string{
		"a.txt.handlebars": "{{#if name}}unclosed",
		"b.txt.handlebars": "ok {{name}}",
	})
	files := []string{"a.txt.handlebars", "b.txt.handlebars"}

	t.Run("keep going", func(t *testing.T) {
		outDir := t.TempDir()
		report := NewRenderer().Render(setDir, files, outDir, NewContext("Card", "c", "S", ""))

		require.Len(t, report.Results, 2)
		assert.Equal(t, model.FileFailed, report.Results[0].Status)
		assert.Error(t, report.Results[0].Err)
		assert.Equal(t, model.FileCreated, report.Results[1].Status)
		assert.True(t, report.Failed())

		_, err := os.Stat(filepath.Join(outDir, "a.txt"))
		assert.True(t, os.IsNotExist(err), "failed template must not leave an output file")
	})

	t.Run("stop at first failure", func(t *testing.T) {
		outDir := t.TempDir()
		r := NewRenderer()
		r.KeepGoing = false
		report := r.Render(setDir, files, outDir, NewContext("Card", "c", "S", ""))

		require.Len(t, report.Results, 1)
		assert.Equal(t, model.FileFailed, report.Results[0].Status)

		_, err := os.Stat(filepath.Join(outDir, "b.txt"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestRenderer_MissingTemplate(t *testing.T) {
	setDir := t.TempDir()
	report := NewRenderer().Render(setDir, []string{"gone.handlebars"}, t.TempDir(), NewContext("Card", "c", "S", ""))

	require.Len(t, report.Results, 1)
	assert.Equal(t, model.FileFailed, report.Results[0].Status)
	assert.True(t, errors.Is(report.Results[0].Err, os.ErrNotExist))
}

type stubEngine struct{ out string }

func (s stubEngine) Render(string, map[string]interface{}) (string, error) { return s.out, nil }

func TestRenderer_CustomEngine(t *testing.T) {
	setDir := setupSet(t, map[string]string{"x.handlebars": "ignored"})
	outDir := t.TempDir()

	r := &Renderer{Engine: stubEngine{out: "stubbed"}, KeepGoing: true}
	report := r.Render(setDir, []string{"x.handlebars"}, outDir, NewContext("Card", "c", "S", ""))
	require.False(t, report.Failed())

	data, err := os.ReadFile(filepath.Join(outDir, "x"))
	require.NoError(t, err)
	assert.Equal(t, "stubbed", string(data))
}
