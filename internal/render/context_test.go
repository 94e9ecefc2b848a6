package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Mybutton", "button", "Components", "")

	assert.Equal(t, "Mybutton", ctx.Name)
	assert.Equal(t, "{Mybutton}", ctx.NameInBrackets)
	assert.Equal(t, "{MybuttonData}", ctx.DataName)
	assert.Equal(t, "button", ctx.Type)
	assert.Equal(t, "Components", ctx.Section)
	assert.Empty(t, ctx.FigmaDoc)
	assert.Empty(t, ctx.FigmaNode)
}

// TestNewContext_FigmaSplit verifies the figma URL is split on the first "=".
func TestNewContext_FigmaSplit(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantDoc  string
		wantNode string
	}{
		{
			name:     "node id query",
			url:      "https://figma.com/file/abc?node-id=1-2",
			wantDoc:  "https://figma.com/file/abc?node-id",
			wantNode: "1-2",
		},
		{
			name:     "only the first equals splits",
			url:      "https://figma.com/file/abc?node-id=1-2&mode=dev",
			wantDoc:  "https://figma.com/file/abc?node-id",
			wantNode: "1-2&mode=dev",
		},
		{
			name:     "no equals",
			url:      "https://figma.com/file/abc",
			wantDoc:  "https://figma.com/file/abc",
			wantNode: "",
		},
		{
			name:     "empty url",
			url:      "",
			wantDoc:  "",
			wantNode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext("X", "t", "S", tt.url)
			assert.Equal(t, tt.wantDoc, ctx.FigmaDoc)
			assert.Equal(t, tt.wantNode, ctx.FigmaNode)
		})
	}
}

// TestContext_Vars checks the map exposes exactly the recognized tokens.
func TestContext_Vars(t *testing.T) {
	vars := NewContext("Card", "component", "Widgets", "doc=node").Vars()

	assert.Len(t, vars, len(Tokens))
	for _, tok := range Tokens {
		assert.Contains(t, vars, tok)
	}
	assert.Equal(t, "Card", vars[TokenName])
	assert.Equal(t, "{CardData}", vars[TokenDataName])
	assert.Equal(t, "Widgets", vars[TokenSection])
	assert.Equal(t, "doc", vars[TokenFigmaDoc])
	assert.Equal(t, "node", vars[TokenFigmaNode])
}
