package domain

// DiffProductTags compares the current associations of a product with the
// requested tag ids. toAdd keeps request order without duplicates; toRemove
// holds the ids of the ProductTag rows whose tag is no longer requested.
func DiffProductTags(current []ProductTag, requested []int) (toAdd []int, toRemove []int) {
	have := make(map[int]bool, len(current))
	for _, pt := range current {
		have[pt.TagID] = true
	}
	want := make(map[int]bool, len(requested))
	for _, tagID := range requested {
		if want[tagID] {
			continue
		}
		want[tagID] = true
		if !have[tagID] {
			toAdd = append(toAdd, tagID)
		}
	}
	for _, pt := range current {
		if !want[pt.TagID] {
			toRemove = append(toRemove, pt.ID)
		}
	}
	return toAdd, toRemove
}

// UniqueIDs drops repeated ids, keeping first occurrences in order.
func UniqueIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
