package boxflow

import (
	"fmt"

	"go.uber.org/zap"
)

// TreeOption is a functional option for configuring a Tree.
type TreeOption func(*Tree) error

// WithLogger sets the structured logger used for layout diagnostics.
// Default is the process-wide logger from pkg/debug.
func WithLogger(l *zap.Logger) TreeOption {
	return func(t *Tree) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		t.logger = l.Named("tree")
		return nil
	}
}

// WithComponentFactory sets how render targets are created for nodes.
// Default is NewSurface.
func WithComponentFactory(f ComponentFactory) TreeOption {
	return func(t *Tree) error {
		if f == nil {
			return fmt.Errorf("component factory must not be nil")
		}
		t.factory = f
		return nil
	}
}

// WithRelayoutHook registers fn to run after every item relayout.
func WithRelayoutHook(fn func(*Item)) TreeOption {
	return func(t *Tree) error {
		t.onRelayout = fn
		return nil
	}
}
