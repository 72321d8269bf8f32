// Package algo has the ranking primitives shared by the aggregations.
package algo

import "sort"

// Counted is one grouping key with its row count.
type Counted struct {
	Key   string
	Count int
}

// SortCounted orders items by count descending. Ties break on the key
// ascending so repeated runs over the same data rank identically.
func SortCounted(items []Counted) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Key < items[j].Key
	})
}

// TopN truncates items to at most n entries. A non-positive n means no cap.
func TopN(items []Counted, n int) []Counted {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

// CountValues tallies the occurrences of each value in rank order.
func CountValues(values []string) []Counted {
	tally := make(map[string]int, len(values))
	for _, v := range values {
		tally[v]++
	}
	items := make([]Counted, 0, len(tally))
	for k, c := range tally {
		items = append(items, Counted{Key: k, Count: c})
	}
	SortCounted(items)
	return items
}
