package engine

// Claim is a pending, not-yet-resolved assertion that a creature will
// occupy a cell once the round resolves.
type Claim struct {
	Player PlayerID     `json:"playerId"`
	Cell   Cell         `json:"cell"`
	Kind   CreatureKind `json:"kind"`
}

// ResolveClaims decides which claims survive when cells are contested.
// A lone claim on a cell survives unconditionally. With two distinct
// kinds present, the dominant kind wins per the cycle in Beats. Claims
// of identical kind contesting a cell are all removed, both in the
// 2-claim and N-claim cases, so a dominant kind survives only when it
// has exactly one claimant. All three kinds on one cell annihilate
// every claim there. Losing claims are discarded, never requeued.
//
// Survivors are returned in the order their claims were submitted.
func ResolveClaims(claims []Claim) []Claim {
	groups := make(map[Cell][]int)
	for i, c := range claims {
		groups[c.Cell] = append(groups[c.Cell], i)
	}

	survive := make(map[int]bool)
	for _, idxs := range groups {
		if i, ok := resolveCell(claims, idxs); ok {
			survive[i] = true
		}
	}

	var out []Claim
	for i, c := range claims {
		if survive[i] {
			out = append(out, c)
		}
	}
	return out
}

// resolveCell returns the index of the single surviving claim for one
// contested cell, or ok=false if nothing survives there.
func resolveCell(claims []Claim, idxs []int) (int, bool) {
	if len(idxs) == 1 {
		return idxs[0], true
	}

	byKind := make(map[CreatureKind][]int)
	for _, i := range idxs {
		byKind[claims[i].Kind] = append(byKind[claims[i].Kind], i)
	}

	// One kind: same-kind collision, all removed.
	// Three kinds: mutual annihilation.
	if len(byKind) != 2 {
		return 0, false
	}

	var a, b CreatureKind
	for k := range byKind {
		if a == 0 {
			a = k
		} else {
			b = k
		}
	}
	dominant := a
	if Beats(b, a) {
		dominant = b
	}

	winners := byKind[dominant]
	if len(winners) != 1 {
		// Dominant-kind claimants tie among themselves: all removed.
		return 0, false
	}
	return winners[0], true
}
