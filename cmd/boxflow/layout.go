package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/boxflow"
	"github.com/grindlemire/boxflow/internal/config"
	"github.com/grindlemire/boxflow/internal/docfile"
	"github.com/grindlemire/boxflow/pkg/debug"
	"github.com/grindlemire/boxflow/pkg/document"
)

func newLayoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "layout file...",
		Short: "Print the computed geometry of each document",
		Long: `Lay out each document against the configured viewport and print the
bounds of every item. A single file prints one tree; several files print a
list in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boxes, err := layoutFiles(cmd.Context(), args, opts.cfg)
			if err != nil {
				return err
			}
			return docfile.Encode(cmd.OutOrStdout(), opts.cfg.Output, boxes...)
		},
	}
}

// layoutFiles lays out every file on its own goroutine. Each file gets its
// own document and tree, so nothing is shared between them.
func layoutFiles(ctx context.Context, paths []string, cfg *config.Config) ([]*docfile.Box, error) {
	boxes := make([]*docfile.Box, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := layoutFile(path, cfg.Viewport)
			if err != nil {
				return err
			}
			boxes[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return boxes, nil
}

func layoutFile(path string, vp config.Viewport) (*docfile.Box, error) {
	n, err := docfile.Load(path)
	if err != nil {
		return nil, err
	}

	doc := document.New()
	root, err := docfile.Build(doc, n)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", path, err)
	}

	logger := debug.L().With(zap.String("file", path))
	tree, err := boxflow.NewTree(doc, root, boxflow.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to lay out %s: %w", path, err)
	}
	defer tree.Close()

	applyViewport(tree, vp)
	logger.Debug("document laid out",
		zap.Int("items", tree.Len()),
		zap.Int("cascades", tree.Cascades()),
	)
	return docfile.Snapshot(tree.Root()), nil
}

// applyViewport sizes the root item. An axis the document sizes itself
// keeps its own size.
func applyViewport(tree *boxflow.Tree, vp config.Viewport) {
	doc, root := tree.Document(), tree.Root()
	width, height := vp.Width, vp.Height
	if doc.Has(root.Handle(), "width") {
		width = root.Width()
	}
	if doc.Has(root.Handle(), "height") {
		height = root.Height()
	}
	root.SetSize(width, height)
}
