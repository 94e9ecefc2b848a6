package render

import "strings"

// Token names recognized in templates.
const (
	TokenName           = "name"
	TokenNameInBrackets = "nameInBrackets"
	TokenDataName       = "dataName"
	TokenType           = "type"
	TokenSection        = "section"
	TokenFigmaDoc       = "figmaDoc"
	TokenFigmaNode      = "figmaNode"
)

// Tokens lists every recognized token in a stable order.
var Tokens = []string{
	TokenName,
	TokenNameInBrackets,
	TokenDataName,
	TokenType,
	TokenSection,
	TokenFigmaDoc,
	TokenFigmaNode,
}

// Context is the render context for one generation request. It is built
// once by NewContext and not modified afterwards.
type Context struct {
	Name           string
	NameInBrackets string
	DataName       string
	Type           string
	Section        string
	FigmaDoc       string
	FigmaNode      string
}

// NewContext derives the render context.
//
// figmaURL is split on its first "=": figmaDoc is everything before it,
// figmaNode everything after. Without "=" the whole URL is figmaDoc and
// figmaNode is empty.
func NewContext(name, componentType, section, figmaURL string) Context {
	doc, node, _ := strings.Cut(figmaURL, "=")
	return Context{
		Name:           name,
		NameInBrackets: "{" + name + "}",
		DataName:       "{" + name + "Data}",
		Type:           componentType,
		Section:        section,
		FigmaDoc:       doc,
		FigmaNode:      node,
	}
}

// Vars returns the context as the token map templates are rendered against.
func (c Context) Vars() map[string]interface{} {
	return map[string]interface{}{
		TokenName:           c.Name,
		TokenNameInBrackets: c.NameInBrackets,
		TokenDataName:       c.DataName,
		TokenType:           c.Type,
		TokenSection:        c.Section,
		TokenFigmaDoc:       c.FigmaDoc,
		TokenFigmaNode:      c.FigmaNode,
	}
}
