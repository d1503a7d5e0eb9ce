package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/twicurl/pkg/errors"
	"github.com/matzehuels/twicurl/pkg/preset"
)

// placeholderSource stands in for the source when showing a preset.
const placeholderSource = "<source>"

// presetsCommand creates the preset management command.
func (c *CLI) presetsCommand() *cobra.Command {
	var presetsFile string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Inspect preset definitions",
	}
	cmd.PersistentFlags().StringVar(&presetsFile, "presets", "", "preset file (default $TWICURL_PRESETS or ~/.config/twicurl/presets.toml)")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the defined presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := c.loadPresets(presetsFile)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if set.Len() == 0 {
				if path, explicit, _ := c.config.presetsPath(presetsFile); explicit {
					printWarning(cmd.ErrOrStderr(), "preset file %s defines no presets", path)
				}
				printInfo(w, "No presets defined")
				return nil
			}
			for _, name := range set.Names() {
				u, _ := set.Get(name)
				s, _ := u.Src(placeholderSource).URL()
				printKeyValue(w, name, s)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "show <name>",
		Short:             "Show the transformations of a preset",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completePresetNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := c.loadPresets(presetsFile)
			if err != nil {
				return err
			}
			u, err := set.Get(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, args[0])
			steps := u.Transformations()
			if len(steps) == 0 {
				printDetail(w, "no transformations")
			}
			for _, step := range steps {
				printStep(w, step)
			}
			s, _ := u.Src(placeholderSource).URL()
			printLink(w, s)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the preset file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _, err := c.config.presetsPath(presetsFile)
			if err != nil {
				return fmt.Errorf("get config dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return cmd
}

// loadPresets reads the preset file. A missing default file is an empty set;
// a missing file that was asked for explicitly is an error.
func (c *CLI) loadPresets(flag string) (*preset.Set, error) {
	path, explicit, err := c.config.presetsPath(flag)
	if err != nil {
		return nil, fmt.Errorf("get config dir: %w", err)
	}

	set, err := preset.Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) && !explicit {
		c.Logger.Debug("no preset file", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded presets", "path", path, "count", set.Len())
	return set, nil
}

// completePresetNames completes preset names from the configured file.
func (c *CLI) completePresetNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 && cmd.Name() == "show" {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if cfg, err := LoadConfig(); err == nil {
		c.config = cfg
	}
	set, err := c.loadPresets("")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return set.Names(), cobra.ShellCompDirectiveNoFileComp
}
