package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	cli "github.com/blimu-dev/model-gen/internal/cli"
)

func main() {
	root := &cobra.Command{
		Use:   "model-gen",
		Short: "Generate typed data models from OpenAPI specs",
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var configPath string
	var singleTarget string
	var input string
	var typ string
	var outDir string
	var fileName string
	var skipInvalid bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate model declarations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerate(cli.RunGenerateParams{
				ConfigPath:   configPath,
				SingleTarget: singleTarget,
				Fallback: cli.FallbackParams{
					Spec:        input,
					Type:        typ,
					OutDir:      outDir,
					FileName:    fileName,
					SkipInvalid: skipInvalid,
				},
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to modelgen.yaml config")
	cmd.Flags().StringVar(&singleTarget, "target", "", "Generate only the named target type from config")
	// Fallback single-target flags
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI spec file (yaml/json) or URL")
	cmd.Flags().StringVar(&typ, "type", "", "Target type (rust or typescript)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory")
	cmd.Flags().StringVar(&fileName, "file-name", "", "Output file name (default depends on target)")
	cmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "Skip schemas that fail to build instead of aborting")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an OpenAPI spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(input)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI spec file (yaml/json)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
