package schema

import (
	"math"
	"sort"
)

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// UpperMedian returns the element at index len/2 of the sorted values.
// For even-length input this is the upper of the two middle elements, not
// their average. Callers depend on this exact tie-break; do not "fix" it.
func UpperMedian(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	return sorted[len(sorted)/2]
}

// SummarizeCounts computes the overview statistics for a set of group
// counts. Returns nil for empty input so callers can omit the summary.
func SummarizeCounts(counts []int) *NeighborhoodSummary {
	if len(counts) == 0 {
		return nil
	}
	total, maxV, minV := 0, counts[0], counts[0]
	for _, c := range counts {
		total += c
		if c > maxV {
			maxV = c
		}
		if c < minV {
			minV = c
		}
	}
	return &NeighborhoodSummary{
		AverageIncidents: float64(total) / float64(len(counts)),
		MedianIncidents:  UpperMedian(counts),
		MaxIncidents:     maxV,
		MinIncidents:     minV,
	}
}
