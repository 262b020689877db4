package match

import "sort"

// MinScore is the similarity below which a candidate is not suggested.
const MinScore = 0.5

type scored struct {
	name  string
	score float64
	order int
}

// Suggest returns up to limit candidates closest to want, best first.
// Ties keep candidate order. Duplicate candidate names are reported once.
func Suggest(want string, candidates []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(candidates))

	var ranked []scored

	for i, c := range candidates {
		if c == want {
			continue
		}

		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		if s := NameScore(want, c); s >= MinScore {
			ranked = append(ranked, scored{name: c, score: s, order: i})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
