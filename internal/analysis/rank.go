package analysis

import "sort"

// RankHeadings sorts a sweep's per-heading results descending by harvested
// energy, so the best vehicle orientation comes first.
func RankHeadings(res *SweepResult) []HeadingResult {
	out := make([]HeadingResult, len(res.Headings))
	copy(out, res.Headings)
	sort.Slice(out, func(i, j int) bool {
		if out[i].EnergyWh != out[j].EnergyWh {
			return out[i].EnergyWh > out[j].EnergyWh
		}
		return out[i].HeadingDeg < out[j].HeadingDeg
	})
	return out
}
