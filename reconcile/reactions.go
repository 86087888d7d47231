package reconcile

import "hotspot_server/models"

// ToggleReaction flips userID's membership in the reactor set for emoji
// and returns the recomputed reactions sequence. The input is not
// mutated, so the same transition can be applied to the remote copy and
// the local cached copy independently.
//
// Cases:
//   - no entry for emoji: append {emoji, count 1, {userID}}
//   - userID already a reactor: remove it; drop the entry entirely if the
//     set drains to empty (no zero-count entries persist)
//   - otherwise: add userID and recompute count
func ToggleReaction(reactions []models.Reaction, userID, emoji string) []models.Reaction {
	out := make([]models.Reaction, 0, len(reactions)+1)
	found := false
	for _, r := range reactions {
		if r.Emoji != emoji {
			out = append(out, copyReaction(r))
			continue
		}
		found = true
		if r.HasReactor(userID) {
			reactors := withoutID(r.ReactorIDs, userID)
			if len(reactors) == 0 {
				continue // last reactor left, entry goes away
			}
			out = append(out, models.Reaction{Emoji: emoji, Count: len(reactors), ReactorIDs: reactors})
		} else {
			reactors := append(copyIDs(r.ReactorIDs), userID)
			out = append(out, models.Reaction{Emoji: emoji, Count: len(reactors), ReactorIDs: reactors})
		}
	}
	if !found {
		out = append(out, models.Reaction{Emoji: emoji, Count: 1, ReactorIDs: []string{userID}})
	}
	return out
}

func copyReaction(r models.Reaction) models.Reaction {
	return models.Reaction{Emoji: r.Emoji, Count: r.Count, ReactorIDs: copyIDs(r.ReactorIDs)}
}

func copyIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func withoutID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
