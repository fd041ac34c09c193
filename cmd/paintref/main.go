package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/erinpentecost/paintref/internal/config"
	"github.com/erinpentecost/paintref/internal/hue"
	"github.com/erinpentecost/paintref/internal/quantize"
	"github.com/erinpentecost/paintref/internal/render"
	"github.com/erinpentecost/paintref/internal/transform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paintref [image]",
		Short: "Generate painting reference images from a photo",
		Long: "paintref writes one PNG per color transform next to the source image:\n" +
			"value studies, grisaille bands, hue purity maps and more.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &config.ConfigError{Key: "image", Err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list, _ := cmd.Flags().GetBool("list"); list {
				printCatalog(out)
				return nil
			}
			cfg, err := loadConfig(cmd.Flags(), args)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, out)
		},
	}
	config.BindFlags(cmd.Flags())
	cmd.Flags().Bool("list", false, "print the transform catalog and exit")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.ConfigError{Err: err}
	})
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd
}

// loadConfig layers defaults, the --config file, flags and the positional
// image argument, in that order.
func loadConfig(fs *pflag.FlagSet, args []string) (config.Config, error) {
	cfg := config.Default()
	if path, _ := fs.GetString("config"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyFlags(fs); err != nil {
		return cfg, err
	}
	if len(args) == 1 {
		cfg.Image = args[0]
	}
	return cfg, cfg.Validate()
}

func printCatalog(out io.Writer) {
	for _, t := range transform.NewCatalog(quantize.New(), hue.NewSwapper(1)) {
		fmt.Fprintf(out, "%-34s %s\n", t.Name, t.Comment)
	}
}

func exitCode(err error) int {
	var (
		cfgErr *config.ConfigError
		inErr  *render.InputError
		outErr *render.OutputError
	)
	switch {
	case errors.As(err, &cfgErr):
		return 2
	case errors.As(err, &inErr):
		return 3
	case errors.As(err, &outErr):
		return 4
	default:
		return 1
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Printf("FAILED: %v\n", err)
		stop()
		os.Exit(exitCode(err))
	}
}
