// SPDX-License-Identifier: MIT

// Command cxm runs the matrix demonstration and small helper commands.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cxm/internal/config"
	"github.com/katalvlaran/cxm/internal/demo"
	xlog "github.com/katalvlaran/cxm/internal/log"
	"github.com/katalvlaran/cxm/matrix"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// options collects flag values; zero values mean "not set".
type options struct {
	configFile string
	logLevel   string
	kind       string
	size       int
	fills      []float64
	metrics    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "cxm",
		Short:         "dense matrix demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			xlog.Configure(xlog.Config{Level: opts.logLevel, Output: stderr})
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run D = A + B + C; D *= A * B * C",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return report(err)
			}
			if cfg.LogLevel != "" && opts.logLevel == "" {
				xlog.Configure(xlog.Config{Level: cfg.LogLevel, Output: stderr})
			}

			return report(demo.Run(cfg, cmd.OutOrStdout(), xlog.WithComponent("demo")))
		},
	}
	demoCmd.Flags().StringVar(&opts.kind, "kind", "", "element kind (int32, int64, float32, float64)")
	demoCmd.Flags().IntVar(&opts.size, "size", 0, "operand size (square)")
	demoCmd.Flags().Float64SliceVar(&opts.fills, "fills", nil, "fill values for A,B,C")
	demoCmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print live matrix counts")

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "list supported element kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range matrix.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(config.Save(args[0], config.DefaultConfig()))
		},
	}

	rootCmd.AddCommand(demoCmd, kindsCmd, initCmd)

	return rootCmd
}

// resolveConfig loads the config file (if any) and applies flags set on cmd.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("kind") {
		cfg.Kind = opts.kind
	}
	if flags.Changed("size") {
		cfg.Size = opts.size
	}
	if flags.Changed("fills") {
		cfg.Fills = opts.fills
	}
	if flags.Changed("metrics") {
		cfg.Metrics = opts.metrics
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	return cfg, cfg.Validate()
}

// report logs a failing command once and passes the error through.
func report(err error) error {
	if err != nil {
		l := xlog.WithComponent("cli")
		l.Error().Err(err).Msg("command failed")
	}

	return err
}
