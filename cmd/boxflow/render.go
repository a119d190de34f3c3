package main

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/spf13/cobra"

	"github.com/grindlemire/boxflow/internal/docfile"
)

var palette = []color.RGBA{
	{R: 0x4e, G: 0x79, B: 0xa7, A: 0xff},
	{R: 0xf2, G: 0x8e, B: 0x2b, A: 0xff},
	{R: 0xe1, G: 0x57, B: 0x59, A: 0xff},
	{R: 0x76, G: 0xb7, B: 0xb2, A: 0xff},
	{R: 0x59, G: 0xa1, B: 0x4f, A: 0xff},
	{R: 0xed, G: 0xc9, B: 0x48, A: 0xff},
}

func newRenderCmd(opts *options) *cobra.Command {
	var (
		out    string
		scale  float64
		labels bool
	)

	cmd := &cobra.Command{
		Use:   "render file",
		Short: "Draw the computed boxes of a document to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale <= 0 {
				return fmt.Errorf("scale must be positive, got %g", scale)
			}
			b, err := layoutFile(args[0], opts.cfg.Viewport)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			if err := drawBoxes(b, scale, labels).SavePNG(path); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default is the input name with a .png extension)")
	cmd.Flags().Float64Var(&scale, "scale", 1, "pixels per layout unit")
	cmd.Flags().BoolVar(&labels, "labels", true, "draw item ids")
	return cmd
}

// drawBoxes paints every box translucent over its parent, outlines its
// bounds and dashes its content box.
func drawBoxes(root *docfile.Box, scale float64, labels bool) *gg.Context {
	w := max(1, int(math.Ceil(root.Bounds.Width*scale)))
	h := max(1, int(math.Ceil(root.Bounds.Height*scale)))

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Scale(scale, scale)
	dc.Translate(-root.Bounds.X, -root.Bounds.Y)

	i := 0
	root.Walk(func(b *docfile.Box, x, y float64) {
		c := palette[i%len(palette)]
		i++

		dc.DrawRectangle(x, y, b.Bounds.Width, b.Bounds.Height)
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), 0x40)
		dc.FillPreserve()
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), 0xff)
		dc.SetLineWidth(1)
		dc.Stroke()

		if b.Content != (docfile.Rect{X: 0, Y: 0, Width: b.Bounds.Width, Height: b.Bounds.Height}) {
			dc.SetDash(3, 2)
			dc.DrawRectangle(x+b.Content.X, y+b.Content.Y, b.Content.Width, b.Content.Height)
			dc.Stroke()
			dc.SetDash()
		}

		if labels && b.Bounds.Width > 0 && b.Bounds.Height > 0 {
			dc.SetRGB(0, 0, 0)
			dc.DrawStringAnchored(b.ID, x+2, y+2, 0, 1)
		}
	})
	return dc
}
