package resolve

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxDistance = 3

type suggestion struct {
	verb     string
	distance int
}

// Suggest returns up to limit verbs close to input: within a small edit
// distance, or containing the input's characters in order. Closest first,
// then alphabetical.
func Suggest(input string, verbs []string, limit int) []string {
	if limit <= 0 || input == "" {
		return nil
	}

	lower := strings.ToLower(input)
	best := make(map[string]int)
	for _, v := range verbs {
		d := fuzzy.LevenshteinDistance(lower, strings.ToLower(v))
		if d > 0 && d <= maxDistance {
			best[v] = d
		}
	}
	for _, rank := range fuzzy.RankFindFold(input, verbs) {
		if rank.Distance == 0 {
			continue
		}
		if d, ok := best[rank.Target]; !ok || rank.Distance < d {
			best[rank.Target] = rank.Distance
		}
	}

	suggestions := make([]suggestion, 0, len(best))
	for v, d := range best {
		suggestions = append(suggestions, suggestion{verb: v, distance: d})
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].verb < suggestions[j].verb
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.verb
	}
	return out
}
