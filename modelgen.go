// Package modelgen generates typed data-model source code from the component
// schemas of an OpenAPI 3 specification.
//
// Every named schema is classified as either an enumeration (a fixed set of
// literal values) or a record (named, typed fields), lowered into a small
// intermediate representation, and rendered through the selected target's
// templates. Rust and TypeScript targets are built in.
//
// Quick Start:
//
//	import modelgen "github.com/blimu-dev/model-gen"
//
//	// Generate Rust models
//	err := modelgen.GenerateRustModels("./openapi.yaml", "./gen")
//
// For more control, see the generator package.
package modelgen

import (
	"github.com/blimu-dev/model-gen/pkg/generator"
)

// GenerateRustModels generates Rust model declarations from an OpenAPI
// specification file or HTTP(S) URL into outDir.
func GenerateRustModels(spec, outDir string) error {
	return generator.GenerateRustModels(spec, outDir)
}

// GenerateTypeScriptModels generates TypeScript model declarations from an
// OpenAPI specification file or HTTP(S) URL into outDir.
func GenerateTypeScriptModels(spec, outDir string) error {
	return generator.GenerateTypeScriptModels(spec, outDir)
}

// GenerateModels generates models with full configuration options.
//
// Example:
//
//	err := modelgen.GenerateModels(modelgen.GenerateModelsOptions{
//		Spec:   "./openapi.yaml",
//		Type:   "typescript",
//		OutDir: "./gen",
//	})
func GenerateModels(opts GenerateModelsOptions) error {
	return generator.GenerateModels(generator.GenerateModelsOptions{
		ConfigPath:   opts.ConfigPath,
		SingleTarget: opts.SingleTarget,
		Spec:         opts.Spec,
		Type:         opts.Type,
		OutDir:       opts.OutDir,
		FileName:     opts.FileName,
		SkipInvalid:  opts.SkipInvalid,
	})
}

// GenerateFromConfig generates models from a YAML configuration file.
// Optionally, a single target type can be named to generate only that target.
func GenerateFromConfig(configPath string, singleTarget ...string) error {
	return generator.GenerateFromConfig(configPath, singleTarget...)
}

// ValidateSpec validates an OpenAPI specification file. Useful for checking a
// spec before attempting generation.
func ValidateSpec(specPath string) error {
	return generator.ValidateSpec(specPath)
}

// GenerateModelsOptions contains options for model generation
type GenerateModelsOptions struct {
	// ConfigPath is the path to the configuration file (optional)
	ConfigPath string

	// SingleTarget generates only the named target from config (optional)
	SingleTarget string

	// Fallback options when no config file is provided
	Spec        string // OpenAPI spec file or URL
	Type        string // Target type ("rust" or "typescript")
	OutDir      string // Output directory
	FileName    string // Output file name (optional)
	SkipInvalid bool   // Skip schemas that fail to build instead of aborting
}
