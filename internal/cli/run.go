package cli

import (
	"errors"
	"path/filepath"

	"github.com/blimu-dev/model-gen/pkg/config"
	"github.com/blimu-dev/model-gen/pkg/generator"
	"github.com/blimu-dev/model-gen/pkg/openapi"
)

// FallbackParams mirror the single-target flags used when no config file is given
type FallbackParams struct {
	Spec        string
	Type        string
	OutDir      string
	FileName    string
	SkipInvalid bool
}

// RunGenerateParams are the inputs of the generate command
type RunGenerateParams struct {
	ConfigPath   string
	SingleTarget string
	Fallback     FallbackParams
}

// RunGenerate drives model generation from CLI parameters
func RunGenerate(p RunGenerateParams) error {
	if p.ConfigPath == "" {
		if p.Fallback.Spec == "" || p.Fallback.Type == "" || p.Fallback.OutDir == "" {
			return errors.New("either --config or all of --input, --type, --out must be provided")
		}
		cfg := &config.Config{
			Spec: p.Fallback.Spec,
			Targets: []config.Target{
				{
					Type:        p.Fallback.Type,
					OutDir:      absPath(p.Fallback.OutDir),
					FileName:    p.Fallback.FileName,
					SkipInvalid: p.Fallback.SkipInvalid,
				},
			},
		}
		return generator.NewService().GenerateFromConfig(cfg, "")
	}

	cfg, err := config.Load(p.ConfigPath)
	if err != nil {
		return err
	}
	return generator.NewService().GenerateFromConfig(cfg, p.SingleTarget)
}

// RunValidate validates an OpenAPI spec file
func RunValidate(input string) error {
	return openapi.ValidateDocument(input)
}

func absPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	abs, _ := filepath.Abs(p)
	return abs
}
