// Package generate orchestrates one component generation run.
//
// Orchestration steps:
//  1. Validate the component type against the discovered skeleton sets
//  2. Load the type's config and derive the component name and output path
//  3. Refuse to generate into a non-empty directory unless merging
//  4. Create the output directory
//  5. Render every template file, skipping outputs that already exist
//  6. Return a per-file report
//
// Usage and config failures happen before anything is written. Template
// failures are collected in the report; files written before a failure
// are left in place.
package generate
