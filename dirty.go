package boxflow

import (
	"cmp"
	"slices"

	"go.uber.org/zap"
)

// begin opens a cascade scope. Event handlers call it on entry so that
// nested notifications fold into the outermost one.
func (t *Tree) begin() {
	t.depth++
}

// end closes a cascade scope. Leaving the outermost scope sweeps the dirty
// set before control returns to whoever mutated the document.
func (t *Tree) end() {
	t.depth--
	if t.depth == 0 && !t.sweeping {
		t.sweep()
	}
}

// markDirty queues it for relayout in the current cascade. Items already
// laid out in this cascade are not queued again.
func (t *Tree) markDirty(it *Item) {
	if _, ok := t.items[it.node]; !ok {
		return
	}
	if _, done := t.done[it]; done {
		t.logger.Debug("skipping relayout already done in this cascade", zap.String("id", it.ID()))
		return
	}
	t.dirty[it] = struct{}{}
}

// sweep lays out dirty items shallowest first, each at most once.
func (t *Tree) sweep() {
	if len(t.dirty) == 0 {
		return
	}
	t.sweeping = true
	t.cascades++
	defer func() {
		t.sweeping = false
		clear(t.dirty)
		clear(t.done)
	}()

	processed := 0
	for {
		next := t.nextDirty()
		if next == nil {
			break
		}
		delete(t.dirty, next)
		t.done[next] = struct{}{}
		next.relayout()
		processed++
	}
	t.logger.Debug("cascade complete", zap.Int("cascade", t.cascades), zap.Int("relayouts", processed))
}

func (t *Tree) nextDirty() *Item {
	if len(t.dirty) == 0 {
		return nil
	}
	type candidate struct {
		item  *Item
		depth int
	}
	candidates := make([]candidate, 0, len(t.dirty))
	for it := range t.dirty {
		candidates = append(candidates, candidate{item: it, depth: t.doc.Depth(it.node)})
	}
	best := slices.MinFunc(candidates, func(a, b candidate) int {
		if c := cmp.Compare(a.depth, b.depth); c != 0 {
			return c
		}
		return cmp.Compare(a.item.node, b.item.node)
	})
	return best.item
}
