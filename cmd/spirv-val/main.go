// Command spirv-val validates SPIR-V binary modules.
//
// Usage:
//
//	spirv-val [flags] <module.spv>
//
// Examples:
//
//	spirv-val shader.spv
//	spirv-val --before-hlsl-legalization shader.spv
//	spirv-val --config val.yaml shader.spv
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	spirvtools "github.com/CHIP-SPV/SPIRV-Tools"
)

// config mirrors the validator options for the optional YAML file.
type config struct {
	RelaxLogicalPointer    bool `yaml:"relax-logical-pointer"`
	BeforeHLSLLegalization bool `yaml:"before-hlsl-legalization"`
}

var (
	configPath             string
	relaxLogicalPointer    bool
	beforeHLSLLegalization bool
)

var rootCmd = &cobra.Command{
	Use:   "spirv-val [flags] <module.spv>",
	Short: "Validate a SPIR-V binary module",
	Long: `spirv-val checks a SPIR-V binary module against the semantic rules
of the SPIR-V specification and reports the first violated rule with the
ids involved. A conformant module produces no output and exit code 0.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "",
		"YAML file with validator options")
	rootCmd.Flags().BoolVar(&relaxLogicalPointer, "relax-logical-pointer", false,
		"allow pointer arguments that are not memory object declarations")
	rootCmd.Flags().BoolVar(&beforeHLSLLegalization, "before-hlsl-legalization", false,
		"relax type matching for modules that are not yet legalized")
}

func run(cmd *cobra.Command, args []string) error {
	opts := spirvtools.DefaultOptions()

	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		var cfg config
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
		opts.RelaxLogicalPointer = cfg.RelaxLogicalPointer
		opts.BeforeHLSLLegalization = cfg.BeforeHLSLLegalization
	}
	if cmd.Flags().Changed("relax-logical-pointer") {
		opts.RelaxLogicalPointer = relaxLogicalPointer
	}
	if cmd.Flags().Changed("before-hlsl-legalization") {
		opts.BeforeHLSLLegalization = beforeHLSLLegalization
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading module: %w", err)
	}

	if err := spirvtools.ValidateBinaryWithOptions(data, opts); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
