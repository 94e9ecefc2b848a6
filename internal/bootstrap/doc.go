// Package bootstrap installs the bundled example skeleton sets into a
// project.
//
// The examples are embedded in the binary and copied into the skeleton
// root (".skeleton" by default) of the current directory. Installation
// refuses to run when the destination already exists.
package bootstrap
