// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking for property paths.
//
// Key functions:
//   - NormalizeIdent: normalizes property names for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankKeys: ranks existing property paths against a requested one,
//     used for "did you mean" suggestions on missing properties
package match
