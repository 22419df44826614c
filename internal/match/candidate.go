package match

import (
	"sort"
	"strings"
)

// SuggestThreshold is the minimal score for a key to be offered as a suggestion.
const SuggestThreshold = 0.5

// Candidate is an existing property path scored against a requested one.
type Candidate struct {
	Key string

	// Scoring components
	PathScore float64 // similarity of the full normalized paths
	LeafScore float64 // similarity of the last path segments

	// Combined score for ranking (higher is better)
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankKeys scores every key against target and returns the candidates
// sorted by score (descending), then by key for determinism.
func RankKeys(target string, keys []string) CandidateList {
	candidates := make(CandidateList, 0, len(keys))

	targetNorm := normalizePath(target)
	targetLeaf := leaf(target)

	for _, key := range keys {
		pathScore := LevenshteinNormalized(normalizePath(key), targetNorm)
		leafScore := IdentSimilarity(leaf(key), targetLeaf)

		candidates = append(candidates, Candidate{
			Key:       key,
			PathScore: pathScore,
			LeafScore: leafScore,
			Score:     max(pathScore, 0.9*leafScore),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Top returns at most n keys scoring at least minScore.
func (cl CandidateList) Top(n int, minScore float64) []string {
	var res []string
	for _, c := range cl {
		if len(res) >= n || c.Score < minScore {
			break
		}

		res = append(res, c.Key)
	}

	return res
}

func (cl CandidateList) Len() int { return len(cl) }

func (cl CandidateList) Less(i, j int) bool {
	if cl[i].Score != cl[j].Score {
		return cl[i].Score > cl[j].Score
	}

	return cl[i].Key < cl[j].Key
}

func (cl CandidateList) Swap(i, j int) { cl[i], cl[j] = cl[j], cl[i] }

// normalizePath normalizes every segment of a slash separated path.
func normalizePath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, s := range segments {
		segments[i] = NormalizeIdent(s)
	}

	return strings.Join(segments, "/")
}

func leaf(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}

	return path
}
