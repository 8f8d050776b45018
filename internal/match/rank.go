package match

import (
	"sort"
)

// DefaultThreshold is the similarity a candidate needs to be suggested.
const DefaultThreshold = 0.6

// Candidate is a name scored against a target.
type Candidate struct {
	Name  string
	Score float64
}

// Candidates is a list of candidates with ranking functionality.
type Candidates []Candidate

// Rank scores every distinct name against target after normalizing both
// with normalize. Candidates are sorted by score descending, then by name.
func Rank(target string, names []string, normalize func(string) string) Candidates {
	norm := normalize(target)
	seen := make(map[string]struct{}, len(names))

	var out Candidates
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		out = append(out, Candidate{Name: name, Score: Similarity(norm, normalize(name))})
	}

	sort.Sort(out)

	return out
}

// Suggest returns up to n names resembling target. Paths are compared
// segment by segment.
func Suggest(target string, names []string, path bool, n int) []string {
	normalize := NormalizeIdent
	if path {
		normalize = NormalizePath
	}

	return Rank(target, names, normalize).AboveThreshold(DefaultThreshold).Top(n).Names()
}

// Len implements sort.Interface.
func (c Candidates) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c Candidates) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c Candidates) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c Candidates) Top(n int) Candidates {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c Candidates) AboveThreshold(threshold float64) Candidates {
	var out Candidates
	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

// Names returns the candidate names in order.
func (c Candidates) Names() []string {
	out := make([]string, len(c))
	for i, cand := range c {
		out[i] = cand.Name
	}

	return out
}
