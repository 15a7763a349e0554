package main

import (
	"github.com/spf13/cobra"

	"asmopt/internal/driver"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [flags] <file.asm|directory>...",
		Short: "Parse assembly IR and print the canonical tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeCommand(cmd, args, driver.CommandParse)
		},
	}
}

func newDisambiguateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disambiguate [flags] <file.asm|directory>...",
		Short: "Give every declared identifier a unique name",
		Long: `Disambiguate renames variables, functions and labels so that no two
declarations share a name. The first declaration keeps its name; later ones
get name<separator>N with the smallest free N.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeCommand(cmd, args, driver.CommandDisambiguate)
		},
	}
	cmd.Flags().String("separator", "_", "separator between a name and its numeric suffix")
	return cmd
}

func runTreeCommand(cmd *cobra.Command, args []string, command driver.Command) error {
	run, err := runPipeline(cmd, args, command)
	if err != nil {
		return err
	}
	if err := run.writeTrees(cmd.OutOrStdout()); err != nil {
		return err
	}
	return exitStatus(run)
}
