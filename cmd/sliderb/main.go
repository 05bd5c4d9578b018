// Command sliderb renders and inspects the slider showcase without a
// window.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hubastard/bumpslider/engine/config"
)

type options struct {
	configPath string
	theme      string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "sliderb",
		Short:         "Render and inspect bump slider documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(); err != nil {
				return err
			}
			cfg, err := config.Resolve(opts.configPath)
			if err != nil {
				return err
			}
			if opts.theme != "" {
				cfg.Theme = opts.theme
			}
			opts.cfg = cfg
			return cfg.ConfigureLogging()
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $"+config.EnvConfig+" or "+config.DefaultPath+")")
	root.PersistentFlags().StringVarP(&opts.theme, "theme", "t", "", "built-in theme name or TOML theme file")

	root.AddCommand(
		newRenderCmd(opts),
		newDumpCmd(opts),
		newLoadCmd(opts),
		newThemeCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
