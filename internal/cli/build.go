package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/twicurl/pkg/errors"
	"github.com/matzehuels/twicurl/pkg/twicpics"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	preset      string // preset applied on top of the steps
	presetsFile string // preset file overriding TWICURL_PRESETS
	auth        string // token overriding TWICURL_AUTH
	format      string // output format: jpeg, png, webp
	quality     string // quality for jpeg and webp
}

// buildCommand creates the build command that renders a URL to stdout.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <source> [step...]",
		Short: "Build a TwicPics URL",
		Long: `Build a TwicPics URL for a source and print it.

Steps are applied in order. Each step is an operation, optionally followed
by a colon and comma-separated arguments; empty arguments are omitted:

  twicurl build cat.jpg focus:50p,50p cover:1:1 resize:500
  twicurl build cat.jpg crop:,300,10      # crop=-x300@10
  twicurl build cat.jpg crop:height=300,x=10

With --preset, the source and steps form the content and the preset is
applied on top of it: the preset format wins over --format, the token of
the content wins over the preset's, and the steps run before the preset's.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.OutOrStdout(), args[0], args[1:], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "preset to apply")
	cmd.Flags().StringVar(&opts.presetsFile, "presets", "", "preset file (default $TWICURL_PRESETS or ~/.config/twicurl/presets.toml)")
	cmd.Flags().StringVar(&opts.auth, "auth", "", "authentication token (default $TWICURL_AUTH)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: jpeg, png, webp")
	cmd.Flags().StringVarP(&opts.quality, "quality", "q", "", "output quality (jpeg, webp)")

	_ = cmd.RegisterFlagCompletionFunc("preset", c.completePresetNames)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return twicpics.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runBuild(w io.Writer, src string, steps []string, opts buildOpts) error {
	if err := errors.ValidateSource(src); err != nil {
		return err
	}

	content := twicpics.NewChain()

	auth := opts.auth
	if auth == "" {
		auth = c.config.Auth
	}
	if auth != "" {
		content = content.Auth(auth)
	}

	for _, raw := range steps {
		op, args, err := parseStep(raw)
		if err != nil {
			return err
		}
		c.Logger.Debug("step", "op", op, "args", len(args))
		content = content.Apply(op, args...)
	}

	switch {
	case opts.format != "" && opts.quality != "":
		content = content.Format(opts.format, opts.quality)
	case opts.format != "":
		content = content.Format(opts.format)
	case opts.quality != "":
		return errors.New(errors.ErrCodeInvalidInput, "--quality requires --format")
	}

	u, err := content.Src(src).Result()
	if err != nil {
		return err
	}

	if opts.preset != "" {
		set, err := c.loadPresets(opts.presetsFile)
		if err != nil {
			return err
		}
		if u, err = set.Compose(opts.preset, u); err != nil {
			return err
		}
		c.Logger.Debug("applied preset", "name", opts.preset)
	}

	s, err := u.URL()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, s)
	return nil
}
