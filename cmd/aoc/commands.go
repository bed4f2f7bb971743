package main

import (
	"fmt"
	"strconv"

	"github.com/povarna/aoc2022/internal/setup"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2022 solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the config file (default configs/aoc.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(newRunCmd(flags), newListCmd(flags))
	return rootCmd
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	var all bool
	var inputFile string

	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve one or more days and print both answers",
		Example: `  aoc run 5
  aoc run 6 --input sample.txt
  aoc run --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) > 0) {
				return fmt.Errorf("pass either day numbers or --all")
			}
			if inputFile != "" && len(args) != 1 {
				return fmt.Errorf("--input needs exactly one day")
			}

			days := make([]int, 0, len(args))
			for _, arg := range args {
				day, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid day %q", arg)
				}
				days = append(days, day)
			}

			deps, err := setup.Wire(setup.Options{
				ConfigPath: flags.configPath,
				LogLevel:   flags.logLevel,
				InputFile:  inputFile,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			if all {
				days = deps.Runner.Days()
			}
			reports, err := deps.Runner.RunDays(days)
			if renderErr := deps.Renderer.RenderAll(reports); renderErr != nil {
				return renderErr
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Solve every registered day")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read the input from this file instead of the configured one")
	return cmd
}

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days that have a solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := setup.Wire(setup.Options{
				ConfigPath: flags.configPath,
				LogLevel:   flags.logLevel,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			for _, day := range deps.Runner.Days() {
				title, _ := deps.Runner.Title(day)
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", day, title)
			}
			return nil
		},
	}
}
