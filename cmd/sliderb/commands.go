package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hubastard/bumpslider/engine/assets"
	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/config"
	"github.com/hubastard/bumpslider/engine/gfx/renderer2d"
	"github.com/hubastard/bumpslider/engine/serialize"
	"github.com/hubastard/bumpslider/engine/text"
	"github.com/hubastard/bumpslider/internal/demo"
)

// showcase builds the demo with the configured theme and, when statePath is
// set, the slider values from that YAML document.
func showcase(opts *options, statePath string) (*demo.Demo, error) {
	th, err := opts.cfg.LoadTheme("")
	if err != nil {
		return nil, err
	}
	d := demo.New(opts.cfg.LiveUpdate)
	d.SetTheme(th)
	if statePath == "" {
		return d, nil
	}
	nodes, err := readDocument(statePath)
	if err != nil {
		return nil, err
	}
	return d, d.Apply(nodes)
}

func readDocument(path string) ([]serialize.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	nodes, err := serialize.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nodes, nil
}

func newRenderCmd(opts *options) *cobra.Command {
	var (
		statePath string
		scale     float64
		width     int
		height    int
	)
	cmd := &cobra.Command{
		Use:   "render <out.png>",
		Short: "Render the showcase to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale <= 0 {
				return errors.New("scale must be positive")
			}
			d, err := showcase(opts, statePath)
			if err != nil {
				return err
			}
			var font *text.Font
			if opts.cfg.Font != "" {
				if font, err = text.LoadTTF(opts.cfg.Font); err != nil {
					return err
				}
			}
			r := renderer2d.New(image.NewRGBA(image.Rect(0, 0, width, height)), font)
			d.Render(r, true)
			if err := assets.SavePNG(args[0], r.Target(), scale); err != nil {
				return err
			}
			st := r.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d ops, %d surfaces)\n", args[0], st.TotalOps(), st.Surfaces)
			return nil
		},
	}
	cmd.Flags().StringVarP(&statePath, "state", "s", "", "YAML document to apply before rendering")
	cmd.Flags().Float64Var(&scale, "scale", 1, "output scale factor")
	cmd.Flags().IntVar(&width, "width", int(demo.Size.W), "frame width")
	cmd.Flags().IntVar(&height, "height", int(demo.Size.H), "frame height")
	return cmd
}

func newDumpCmd(opts *options) *cobra.Command {
	var (
		statePath string
		stored    bool
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the showcase document as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := showcase(opts, statePath)
			if err != nil {
				return err
			}
			if stored {
				if opts.cfg.StateApp == "" {
					return errors.New("state_app is not configured")
				}
				store, err := config.OpenState(opts.cfg.StateApp)
				if err != nil {
					return err
				}
				nodes, err := store.Load()
				if err != nil {
					return err
				}
				if err := d.Apply(nodes); err != nil {
					return err
				}
			}
			return serialize.Encode(cmd.OutOrStdout(), d.Document())
		},
	}
	cmd.Flags().StringVarP(&statePath, "state", "s", "", "YAML document to apply first")
	cmd.Flags().BoolVar(&stored, "stored", false, "apply the values saved by the sandbox")
	return cmd
}

func newLoadCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "load <doc.yaml>",
		Short: "Apply a document to the showcase and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := showcase(opts, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, d.Readout.Text())
			return serialize.Encode(out, d.Document())
		},
	}
}

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "Print a theme as TOML, or list the built-in themes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, strings.Join(colors.BuiltinNames(), "\n"))
				return nil
			}
			th, ok := colors.Builtin(args[0])
			if !ok {
				return fmt.Errorf("no built-in theme %q", args[0])
			}
			data, err := th.EncodeTOML()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}
