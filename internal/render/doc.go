// Package render turns the template files of a skeleton set into source
// files for one component.
//
// Rendering has three parts:
//
//   - Context: the fixed token vocabulary handed to every template
//     (name, nameInBrackets, dataName, type, section, figmaDoc, figmaNode).
//   - Engine: Handlebars rendering via github.com/aymerick/raymond.
//   - Renderer: maps template file names to output names, skips outputs
//     that already exist and records a per-file result.
//
// Existing files are never overwritten.
package render
