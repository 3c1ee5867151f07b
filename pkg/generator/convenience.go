package generator

import (
	"path/filepath"

	"github.com/blimu-dev/model-gen/pkg/config"
	"github.com/blimu-dev/model-gen/pkg/openapi"
)

// GenerateModels is a convenience function for generating models with minimal configuration
func GenerateModels(opts GenerateModelsOptions) error {
	service := NewService()

	genOpts := GenerateOptions{
		ConfigPath:   opts.ConfigPath,
		SingleTarget: opts.SingleTarget,
		Fallback: FallbackOptions{
			Spec:        opts.Spec,
			Type:        opts.Type,
			OutDir:      opts.OutDir,
			FileName:    opts.FileName,
			SkipInvalid: opts.SkipInvalid,
		},
	}

	return service.Generate(genOpts)
}

// GenerateModelsOptions contains options for the convenience GenerateModels function
type GenerateModelsOptions struct {
	// ConfigPath is the path to the configuration file (optional)
	ConfigPath string

	// SingleTarget generates only the named target from config (optional)
	SingleTarget string

	// Fallback options when no config file is provided
	Spec        string // OpenAPI spec file or URL
	Type        string // Target type ("rust" or "typescript")
	OutDir      string // Output directory
	FileName    string // Output file name (optional, target default when empty)
	SkipInvalid bool   // Skip schemas that fail to build instead of aborting
}

// GenerateRustModels is a convenience function specifically for Rust model generation
func GenerateRustModels(spec, outDir string) error {
	return generateForType(spec, outDir, "rust")
}

// GenerateTypeScriptModels is a convenience function specifically for TypeScript model generation
func GenerateTypeScriptModels(spec, outDir string) error {
	return generateForType(spec, outDir, "typescript")
}

func generateForType(spec, outDir, typ string) error {
	absOutDir, err := filepath.Abs(outDir)
	if err != nil {
		return err
	}
	return GenerateModels(GenerateModelsOptions{
		Spec:   spec,
		Type:   typ,
		OutDir: absOutDir,
	})
}

// GenerateFromConfig is a convenience function for generating from a config file
func GenerateFromConfig(configPath string, singleTarget ...string) error {
	service := NewService()
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	onlyTarget := ""
	if len(singleTarget) > 0 {
		onlyTarget = singleTarget[0]
	}

	return service.GenerateFromConfig(cfg, onlyTarget)
}

// ValidateSpec validates an OpenAPI specification
func ValidateSpec(specPath string) error {
	return openapi.ValidateDocument(specPath)
}
