package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deepharbor/substrip/internal/batch"
	"github.com/deepharbor/substrip/internal/config"
	"github.com/deepharbor/substrip/internal/messages"
	"github.com/deepharbor/substrip/internal/strip"
	"github.com/deepharbor/substrip/internal/terminal"
	"github.com/deepharbor/substrip/internal/wizard"
)

// isInteractive is swappable in tests.
var isInteractive = terminal.IsInteractive

func newStripCmd() *cobra.Command {
	var (
		inputFlag    string
		outputFlag   string
		upgradesFlag bool
		itemsFlag    bool
		dryRun       bool
		diffLines    int
	)

	cmd := &cobra.Command{
		Use:   messages.StripUse,
		Short: messages.StripShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Load(cwd)
			if err != nil {
				return err
			}

			inputDir := resolvePath(cwd, cfg.Paths.Input)
			if cmd.Flags().Changed("input") {
				inputDir = resolvePath(cwd, inputFlag)
			}
			outputDir := resolvePath(cwd, cfg.Paths.Output)
			if cmd.Flags().Changed("output") {
				outputDir = resolvePath(cwd, outputFlag)
			}
			if filepath.Clean(inputDir) == filepath.Clean(outputDir) {
				return fmt.Errorf(messages.ConfigSameInputOutputFmt, filepath.Clean(inputDir))
			}

			toggles := wizard.Toggles{
				Upgrades: cfg.Strip.Upgrades,
				Items:    cfg.Strip.Items,
			}
			if cmd.Flags().Changed("upgrades") {
				toggles.Upgrades = &upgradesFlag
			}
			if cmd.Flags().Changed("items") {
				toggles.Items = &itemsFlag
			}
			var ui wizard.UI
			if !toggles.Resolved() {
				if !isInteractive() {
					return errors.New(messages.StripTogglesNonInteractive)
				}
				ui = wizard.NewHuhUI()
			}
			upgrades, items, err := wizard.Resolve(ui, toggles)
			if err != nil {
				return err
			}
			if !upgrades && !items {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.StripNothingToDo)
				return nil
			}

			maxLines := 0
			if cmd.Flags().Changed("diff-lines") {
				maxLines = diffLines
			} else if cfg.Strip.DiffLines != nil {
				maxLines = *cfg.Strip.DiffLines
			}

			opts := batch.Options{
				InputDir:  inputDir,
				OutputDir: outputDir,
				Strip: strip.Options{
					StripUpgrades: upgrades,
					StripItems:    items,
					Exclusions:    config.NewExclusionSet(cfg.Exclusions.Identifiers),
				},
				DryRun:       dryRun,
				DiffMaxLines: maxLines,
			}
			_, err = batch.Run(batch.RealSystem{}, cmd.OutOrStdout(), opts)
			return err
		},
	}

	cmd.Flags().StringVar(&inputFlag, "input", "", messages.StripFlagInput)
	cmd.Flags().StringVar(&outputFlag, "output", "", messages.StripFlagOutput)
	cmd.Flags().BoolVar(&upgradesFlag, "upgrades", false, messages.StripFlagUpgrades)
	cmd.Flags().BoolVar(&itemsFlag, "items", false, messages.StripFlagItems)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.StripFlagDryRun)
	cmd.Flags().IntVar(&diffLines, "diff-lines", batch.DefaultDiffMaxLines, messages.StripFlagDiffLines)

	return cmd
}

// resolvePath anchors relative config paths at the working directory.
func resolvePath(cwd string, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}
