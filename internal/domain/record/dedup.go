package record

import "sort"

// Dedup keeps the first record seen for each dedup key. The survivors keep
// their first-seen relative order, so the output is a subsequence of the input.
func Dedup[T Keyed](in []T) []T {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, r := range in {
		key := r.DedupKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// SortByValue orders projects by portfolio-value rank, highest first.
// The sort is stable: equally ranked projects keep their incoming order.
func SortByValue(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].ValueRank() > projects[j].ValueRank()
	})
}
