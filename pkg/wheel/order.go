package wheel

import "log/slog"

// Arrange resolves the slot order for the given segments and returns
// a permutation of the input, indexed by slot.
//
// Placement runs in two passes. First every segment whose hint
// resolves to a concrete slot claims it; when two segments claim the
// same slot only the earlier one in the input wins, and the loser is
// treated as unpreferenced for this arrangement. Second, unplaced
// segments fill the remaining slots in their original relative order.
func Arrange(segments []*Segment, log *slog.Logger) []*Segment {
	if log == nil {
		log = slog.Default()
	}

	n := len(segments)
	slots := make([]*Segment, n)
	placed := make([]bool, n)

	for i, seg := range segments {
		slot, ok := seg.Preferred.slotFor(n)
		if !ok {
			continue
		}
		if slots[slot] != nil {
			log.Warn("preferred position already taken",
				"segment", seg.Name,
				"position", seg.Preferred.String(),
				"slot", slot,
				"taken_by", slots[slot].Name)
			continue
		}
		slots[slot] = seg
		placed[i] = true
	}

	// Stable backfill: remaining segments take the open slots in order.
	next := 0
	for i, seg := range segments {
		if placed[i] {
			continue
		}
		for slots[next] != nil {
			next++
		}
		slots[next] = seg
		next++
	}

	return slots
}
