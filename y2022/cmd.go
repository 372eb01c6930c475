package main

import (
	"github.com/spf13/cobra"

	aoc "github.com/maisem/aoc2022"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		flags      aoc.Config
	)
	cmd := &cobra.Command{
		Use:   "y2022",
		Short: "Advent of Code 2022 solutions",
		Long: `Runs the Advent of Code 2022 solvers, checking each part against its
sample before running it on the real input.

Examples:
  y2022 --day 16
  y2022 --day 17 --part 2 --skip-sample
  y2022 --config aoc.yaml --sample`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := aoc.LoadConfig(configPath)
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("day") {
				cfg.Day = flags.Day
			}
			if f.Changed("part") {
				cfg.Part = flags.Part
			}
			if f.Changed("sample") {
				cfg.OnlySample = flags.OnlySample
			}
			if f.Changed("skip-sample") {
				cfg.SkipSample = flags.SkipSample
			}
			if f.Changed("debug") {
				cfg.Debug = flags.Debug
			}
			if f.Changed("input-dir") {
				cfg.InputDir = flags.InputDir
			}
			cfg.Out = cmd.OutOrStdout()
			cfg.Logger = aoc.NewLogger(cmd.ErrOrStderr(), cfg.Debug)
			return aoc.Run(cfg, sources, &solver{})
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().IntVar(&flags.Day, "day", 0, "day to run (0 runs all)")
	cmd.Flags().StringVar(&flags.Part, "part", "", "part to run")
	cmd.Flags().BoolVar(&flags.OnlySample, "sample", false, "only run sample")
	cmd.Flags().BoolVar(&flags.SkipSample, "skip-sample", false, "skip sample")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "debug logging")
	cmd.Flags().StringVar(&flags.InputDir, "input-dir", ".", "directory puzzle inputs are cached in")
	return cmd
}
