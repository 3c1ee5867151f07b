package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blimu-dev/model-gen/pkg/config"
)

const petSpec = `
openapi: 3.0.0
info:
  title: Pet store
  version: 1.0.0
paths: {}
components:
  schemas:
    Pet:
      type: object
      description: A pet in the store
      required: [name]
      properties:
        name:
          type: string
        age:
          type: integer
          format: int64
          minimum: 0
        tags:
          type: array
          items:
            type: string
        owner:
          $ref: '#/components/schemas/Owner'
    Status:
      type: string
      enum: [active, in-progress, Done]
    Owner:
      type: object
      properties:
        fullName:
          type: string
`

func writeSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	if err := os.WriteFile(path, []byte(petSpec), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateRustTarget(t *testing.T) {
	outDir := t.TempDir()
	cfg := &config.Config{
		Spec: writeSpec(t),
		Targets: []config.Target{
			{Type: "rust", OutDir: outDir},
		},
	}

	if err := NewService().GenerateFromConfig(cfg, ""); err != nil {
		t.Fatalf("GenerateFromConfig failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "models.rs"))
	if err != nil {
		t.Fatalf("missing output file: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"use serde::{Deserialize, Serialize};",
		"/// A pet in the store",
		"pub struct Pet {",
		"pub name: String,",
		"pub age: Option<u64>,",
		"pub tags: Vec<Option<String>>,",
		"pub owner: Option<Owner>,",
		"pub enum Status {",
		"#[serde(rename = \"in-progress\")]",
		"InProgress,",
		"pub struct Owner {",
		"pub full_name: Option<String>,",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Declarations and fields follow document order, not sorted order
	if strings.Index(out, "pub struct Pet") > strings.Index(out, "pub struct Owner") {
		t.Errorf("Pet should precede Owner (declaration order):\n%s", out)
	}
	if strings.Index(out, "pub name:") > strings.Index(out, "pub age:") {
		t.Errorf("name should precede age (declaration order):\n%s", out)
	}
}

func TestGenerateTypeScriptTarget(t *testing.T) {
	outDir := t.TempDir()
	cfg := &config.Config{
		Spec: writeSpec(t),
		Targets: []config.Target{
			{Type: "typescript", OutDir: outDir, FileName: "schema.ts"},
		},
	}

	if err := NewService().GenerateFromConfig(cfg, ""); err != nil {
		t.Fatalf("GenerateFromConfig failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "schema.ts"))
	if err != nil {
		t.Fatalf("missing output file: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"export interface Pet {",
		"name: string;",
		"age?: number;",
		"tags?: Array<string>;",
		"owner?: Owner;",
		"export enum Status {",
		"Active = \"active\",",
		"InProgress = \"in-progress\",",
		"Done,",
		"export interface Owner {",
		"fullName?: string;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateOnlyTarget(t *testing.T) {
	rustDir := t.TempDir()
	tsDir := t.TempDir()
	cfg := &config.Config{
		Spec: writeSpec(t),
		Targets: []config.Target{
			{Type: "rust", OutDir: rustDir},
			{Type: "typescript", OutDir: tsDir},
		},
	}

	if err := NewService().GenerateFromConfig(cfg, "typescript"); err != nil {
		t.Fatalf("GenerateFromConfig failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(rustDir, "models.rs")); !os.IsNotExist(err) {
		t.Errorf("rust target should have been skipped")
	}
	if _, err := os.Stat(filepath.Join(tsDir, "models.ts")); err != nil {
		t.Errorf("typescript target should have been generated: %v", err)
	}
}

func TestGenerateUnknownTarget(t *testing.T) {
	cfg := &config.Config{
		Spec: writeSpec(t),
		Targets: []config.Target{
			{Type: "cobol", OutDir: t.TempDir()},
		},
	}
	if err := NewService().GenerateFromConfig(cfg, ""); err == nil {
		t.Fatal("expected error for unknown target type")
	}
}

const invalidPropSpec = `
openapi: 3.0.0
info:
  title: Broken
  version: 1.0.0
paths: {}
components:
  schemas:
    Good:
      type: object
      properties:
        name:
          type: string
    Bad:
      type: object
      properties:
        blob:
          type: object
`

func TestGenerateSkipInvalid(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "openapi.yaml")
	if err := os.WriteFile(specPath, []byte(invalidPropSpec), 0o644); err != nil {
		t.Fatal(err)
	}

	// Aborts by default
	outDir := t.TempDir()
	cfg := &config.Config{
		Spec:    specPath,
		Targets: []config.Target{{Type: "rust", OutDir: outDir}},
	}
	if err := NewService().GenerateFromConfig(cfg, ""); err == nil {
		t.Fatal("expected error for unsupported inline object property")
	}

	// Skips and continues with skipInvalid
	cfg.Targets[0].SkipInvalid = true
	if err := NewService().GenerateFromConfig(cfg, ""); err != nil {
		t.Fatalf("GenerateFromConfig failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(outDir, "models.rs"))
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "pub struct Good {") {
		t.Errorf("valid schema should still be generated:\n%s", out)
	}
	if strings.Contains(out, "Bad") {
		t.Errorf("invalid schema should be skipped:\n%s", out)
	}
}
