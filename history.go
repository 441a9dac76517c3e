package annotate

import "log/slog"

// Snapshot is one entry in the undo history: a deep copy of the element
// collection plus the selection index that was active when it was taken
// (-1 for no selection).
//
// Snapshot contents are owned by the HistoryManager. Callers receiving one
// from Undo or Redo must not mutate it; ElementManager.RestoreState copies
// it before use.
type Snapshot struct {
	Elements []*DrawingElement
	Selected int
}

// HistoryManager records full snapshots of the element collection on every
// committed mutation and replays them for linear undo/redo. Snapshots are
// deep copies rather than diffs: annotation sessions are short-lived with
// small element counts, so the simplicity wins over memory economy.
//
// Editing after an undo discards the abandoned redo branch, the classic
// linear-history behavior.
type HistoryManager struct {
	limit  int
	stack  []Snapshot
	cursor int
}

// NewHistoryManager creates a history bounded to limit snapshots; the
// oldest entries fall off once the bound is reached. Non-positive limits
// use DefaultHistoryLimit.
func NewHistoryManager(limit int) *HistoryManager {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryManager{limit: limit, cursor: -1}
}

// SaveState pushes a deep-copied snapshot of elements and the selection
// index. Any redo entries beyond the cursor are discarded first.
func (h *HistoryManager) SaveState(elements []*DrawingElement, selected int) {
	dup := make([]*DrawingElement, len(elements))
	for i, el := range elements {
		dup[i] = el.Clone()
	}

	if discarded := len(h.stack) - (h.cursor + 1); discarded > 0 {
		Logger().Debug("history: discarding redo branch",
			slog.Int("entries", discarded))
		h.stack = h.stack[:h.cursor+1]
	}

	h.stack = append(h.stack, Snapshot{Elements: dup, Selected: selected})
	h.cursor = len(h.stack) - 1

	if len(h.stack) > h.limit {
		drop := len(h.stack) - h.limit
		h.stack = append(h.stack[:0:0], h.stack[drop:]...)
		h.cursor -= drop
		Logger().Debug("history: dropped oldest snapshots",
			slog.Int("dropped", drop), slog.Int("limit", h.limit))
	}
}

// Undo moves the cursor back one snapshot and returns the state now
// pointed to. At the oldest snapshot it reports false and changes nothing;
// boundary undo is a defined no-op, never an error.
func (h *HistoryManager) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	h.cursor--
	return h.stack[h.cursor], true
}

// Redo moves the cursor forward one snapshot and returns the state now
// pointed to, reporting false at the newest snapshot.
func (h *HistoryManager) Redo() (Snapshot, bool) {
	if !h.CanRedo() {
		return Snapshot{}, false
	}
	h.cursor++
	return h.stack[h.cursor], true
}

// CanUndo reports whether Undo would change state. Hosts typically use
// this to enable or disable the undo button.
func (h *HistoryManager) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether Redo would change state.
func (h *HistoryManager) CanRedo() bool {
	return h.cursor >= 0 && h.cursor < len(h.stack)-1
}

// Len returns the number of stored snapshots.
func (h *HistoryManager) Len() int {
	return len(h.stack)
}

// Clear drops all snapshots, e.g. when a capture session ends.
func (h *HistoryManager) Clear() {
	h.stack = nil
	h.cursor = -1
}
