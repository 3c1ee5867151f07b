package generator

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/blimu-dev/model-gen/pkg/config"
	"github.com/blimu-dev/model-gen/pkg/generator/rust"
	"github.com/blimu-dev/model-gen/pkg/generator/typescript"
	"github.com/blimu-dev/model-gen/pkg/ir"
	"github.com/blimu-dev/model-gen/pkg/openapi"
)

// Target is the per-language policy the pipeline is parameterized over:
// naming, primitive type mapping and rendering. A target is selected once at
// startup; the pipeline itself is target-agnostic.
type Target interface {
	// GetType returns the type identifier for this target (e.g. "rust")
	GetType() string
	// TypeName converts a raw schema name into a declaration-cased identifier
	TypeName(raw string) string
	// FieldName converts a raw property name into a usage-cased identifier
	FieldName(raw string) string
	// MapPrimitive maps a schema primitive type tag plus format and minimum
	// hints to a concrete type name. Unknown tags fail with
	// *ir.UnsupportedTypeError.
	MapPrimitive(typ, format string, minimum *float64) (string, error)
	// RenderStruct renders one IR record to its source declaration
	RenderStruct(s ir.Struct) (string, error)
	// RenderEnum renders one IR enumeration to its source declaration
	RenderEnum(e ir.Enum) (string, error)
	// Preamble returns the text emitted once at the top of the models file
	Preamble() string
	// DefaultFileName returns the output file name used when the config
	// does not override it
	DefaultFileName() string
}

// Registry manages available targets
type Registry struct {
	targets map[string]Target
}

// NewRegistry creates a new target registry
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[string]Target),
	}
}

// Register adds a target to the registry
func (r *Registry) Register(t Target) {
	r.targets[t.GetType()] = t
}

// Get retrieves a target by type
func (r *Registry) Get(targetType string) (Target, bool) {
	t, exists := r.targets[targetType]
	return t, exists
}

// GetAvailableTypes returns all registered target types
func (r *Registry) GetAvailableTypes() []string {
	types := make([]string, 0, len(r.targets))
	for t := range r.targets {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// GenerateOptions contains options for model generation
type GenerateOptions struct {
	ConfigPath   string
	SingleTarget string
	Fallback     FallbackOptions
}

// FallbackOptions contains fallback options when no config file is provided
type FallbackOptions struct {
	Spec        string
	Type        string
	OutDir      string
	FileName    string
	SkipInvalid bool
}

// Service provides high-level model generation functionality
type Service struct {
	registry *Registry
}

// NewService creates a new generator service with the default targets
func NewService() *Service {
	registry := NewRegistry()
	registry.Register(rust.New())
	registry.Register(typescript.New())
	return &Service{
		registry: registry,
	}
}

// NewServiceWithRegistry creates a new generator service with a custom registry
func NewServiceWithRegistry(registry *Registry) *Service {
	return &Service{
		registry: registry,
	}
}

// GetRegistry returns the target registry
func (s *Service) GetRegistry() *Registry {
	return s.registry
}

// Generate generates models based on the provided options
func (s *Service) Generate(opts GenerateOptions) error {
	var cfg *config.Config
	var err error

	if opts.ConfigPath == "" {
		if opts.Fallback.Spec == "" || opts.Fallback.Type == "" || opts.Fallback.OutDir == "" {
			return fmt.Errorf("either config path or all fallback options must be provided")
		}
		cfg = &config.Config{
			Spec: opts.Fallback.Spec,
			Targets: []config.Target{
				{
					Type:        opts.Fallback.Type,
					OutDir:      opts.Fallback.OutDir,
					FileName:    opts.Fallback.FileName,
					SkipInvalid: opts.Fallback.SkipInvalid,
				},
			},
		}
	} else {
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
	}

	return s.GenerateFromConfig(cfg, opts.SingleTarget)
}

// GenerateFromConfig generates models from a configuration
func (s *Service) GenerateFromConfig(cfg *config.Config, onlyTarget string) error {
	doc, err := openapi.LoadDocument(cfg.Spec)
	if err != nil {
		return err
	}

	order, err := openapi.DocumentOrder(cfg.Spec)
	if err != nil {
		return err
	}

	for _, tc := range cfg.Targets {
		if onlyTarget != "" && tc.Type != onlyTarget {
			continue
		}

		target, exists := s.registry.Get(tc.Type)
		if !exists {
			return fmt.Errorf("unsupported target type: %s (available: %s)",
				tc.Type, strings.Join(s.registry.GetAvailableTypes(), ", "))
		}

		if err := s.generateTarget(target, tc, doc, order); err != nil {
			return err
		}
	}
	return nil
}

// generateTarget renders every component schema for one target and writes the
// concatenated declarations to the target's models file. Each schema is
// attempted independently; with SkipInvalid a failed schema is logged and
// dropped, otherwise the first failure aborts the run.
func (s *Service) generateTarget(t Target, tc config.Target, doc *openapi3.T, order *openapi.Order) error {
	if err := os.MkdirAll(tc.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	schemas := openapi.ComponentSchemas(doc)
	decls := make([]string, 0, len(schemas))
	for _, name := range orderedSchemaNames(schemas, order.Schemas) {
		decl, err := RenderSchema(t, name, schemas[name], order.Properties[name])
		if err != nil {
			if tc.SkipInvalid {
				log.Printf("skipping schema %s: %v", name, err)
				continue
			}
			return err
		}
		decls = append(decls, decl)
	}

	fileName := tc.FileName
	if fileName == "" {
		fileName = t.DefaultFileName()
	}

	content := t.Preamble() + strings.Join(decls, "\n")
	target := filepath.Join(tc.OutDir, fileName)
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

// orderedSchemaNames enumerates component schema names in declaration order
// when known, appending unindexed names in sorted order
func orderedSchemaNames(schemas openapi3.Schemas, declared []string) []string {
	names := make([]string, 0, len(schemas))
	seen := make(map[string]bool, len(schemas))
	for _, n := range declared {
		if _, ok := schemas[n]; ok && !seen[n] {
			names = append(names, n)
			seen[n] = true
		}
	}
	rest := make([]string, 0, len(schemas))
	for n := range schemas {
		if !seen[n] {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}
