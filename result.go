package qsim

/*
Result is the outcome distribution of a circuit execution: a mapping from
observed classical bit-strings to how often they occurred over the run's
shots. Bit-strings read highest classical index first, so slot 0 is the
rightmost character.
*/
type Result struct {
	Backend string
	Shots   int
	Counts  map[string]int
}

// Probability returns the observed frequency of an outcome.
func (r *Result) Probability(outcome string) float64 {
	if r.Shots == 0 {
		return 0
	}
	return float64(r.Counts[outcome]) / float64(r.Shots)
}

// Top returns the most frequent outcome, breaking ties on the smaller
// bit-string so the choice is stable.
func (r *Result) Top() (string, int) {
	best, bestCount := "", -1
	for outcome, count := range r.Counts {
		if count > bestCount || (count == bestCount && outcome < best) {
			best, bestCount = outcome, count
		}
	}
	if bestCount < 0 {
		return "", 0
	}
	return best, bestCount
}

// formatBits renders classical slots as a bit-string, slot 0 rightmost.
func formatBits(bits []int) string {
	buf := make([]byte, len(bits))
	for i, b := range bits {
		buf[len(bits)-1-i] = byte('0' + b)
	}
	return string(buf)
}
