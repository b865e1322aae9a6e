package profile

// WhitespaceDelimiter stands in for a run of spaces or tabs. It is a
// detection outcome only; it is never selected as an output delimiter.
const WhitespaceDelimiter = ' '

// Candidates in tie-break priority order.
var delimiterCandidates = []byte{',', ';', '\t', '|', WhitespaceDelimiter}

// DetectDelimiter picks the most plausible field separator from a
// small sample of raw lines. A forced delimiter is returned unchanged.
// Each candidate is scored by how consistently it occurs across the
// sampled lines: it must occur at least once on every line, and the
// candidate with the lowest occurrence variance wins. Ties keep the
// earlier candidate. With no viable candidate the detector falls back
// to a comma, which only affects how single-column input is re-split.
func DetectDelimiter(lines []string, forced byte) byte {
	if forced != 0 {
		return forced
	}

	var sample []string
	for _, l := range lines {
		if l != "" {
			sample = append(sample, l)
		}
	}

	if len(sample) == 0 {
		return ','
	}

	var (
		best    byte
		bestVar float64
		found   bool
	)

	for _, cand := range delimiterCandidates {
		counts := make([]int, len(sample))
		viable := true

		for i, l := range sample {
			n := countOccurrences(l, cand)
			if n < 1 {
				viable = false
				break
			}
			counts[i] = n
		}

		if !viable {
			continue
		}

		v := variance(counts)
		if !found || v < bestVar {
			best = cand
			bestVar = v
			found = true
		}
	}

	if !found {
		return ','
	}

	return best
}

// countOccurrences counts candidate occurrences in a line. For the
// whitespace candidate a maximal run of spaces and tabs counts once.
func countOccurrences(line string, cand byte) int {
	if cand != WhitespaceDelimiter {
		n := 0
		for i := 0; i < len(line); i++ {
			if line[i] == cand {
				n++
			}
		}
		return n
	}

	n := 0
	inRun := false

	for i := 0; i < len(line); i++ {
		ws := line[i] == ' ' || line[i] == '\t'
		if ws && !inRun {
			n++
		}
		inRun = ws
	}

	return n
}

func variance(counts []int) float64 {
	mean := 0.0
	for _, n := range counts {
		mean += float64(n)
	}
	mean /= float64(len(counts))

	v := 0.0
	for _, n := range counts {
		d := float64(n) - mean
		v += d * d
	}

	return v / float64(len(counts))
}
