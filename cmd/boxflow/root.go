package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/grindlemire/boxflow/internal/config"
	"github.com/grindlemire/boxflow/pkg/debug"
)

// options is the state shared by every command of one invocation.
type options struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{v: viper.New()}
	config.SetDefaults(opts.v)

	root := &cobra.Command{
		Use:           "boxflow",
		Short:         "Lay out property documents with the flex and grid algorithms",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.Bind(opts.v, opts.cfgFile)
			cfg, err := config.Load(opts.v)
			if err != nil {
				return err
			}
			if err := debug.Init(cfg.Logger); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.cfg = cfg

			debug.L().Info("starting boxflow",
				zap.String("version", Version),
				zap.String("command", cmd.Name()),
				zap.Float64("viewport_width", cfg.Viewport.Width),
				zap.Float64("viewport_height", cfg.Viewport.Height),
			)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is ./boxflow.yaml)")
	flags.Float64("width", 0, "viewport width given to a root without a width")
	flags.Float64("height", 0, "viewport height given to a root without a height")
	flags.StringP("output", "o", "", "geometry output format: json or yaml")
	flags.IntP("workers", "j", 0, "documents laid out at once (0 means all)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Bool("verbose", false, "log to stderr")

	for key, flag := range map[string]string{
		"viewport.width":  "width",
		"viewport.height": "height",
		"output":          "output",
		"workers":         "workers",
		"logger.level":    "log-level",
		"logger.console":  "verbose",
	} {
		// BindPFlag only fails for a nil flag.
		_ = opts.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	root.AddCommand(
		newLayoutCmd(opts),
		newRenderCmd(opts),
		newVersionCmd(),
	)
	return root
}
