package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"hello", "hello", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},    // substitution
		{"a", "ab", 1},   // insertion
		{"ab", "a", 1},   // deletion
		{"abc", "ab", 1}, // deletion
		{"ab", "abc", 1}, // insertion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"algorithm", "altruistic", 6},

		// Case-sensitive
		{"ABC", "abc", 3},
		{"Hello", "hello", 1},

		// Property name examples
		{"voxelsize", "voxelsize", 0},
		{"voxelsize", "voxelSize", 1}, // case difference
		{"rowvec", "columnvec", 5},
		{"slicevec", "rowvec", 5},

		// Counted in runes
		{"µm", "um", 1},
		{"voxelSize(µm)", "voxelSize(mm)", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		// Identical strings
		{"", "", 1.0},
		{"hello", "hello", 1.0},

		// Completely different
		{"abc", "xyz", 0.0},

		// Partial matches
		{"kitten", "sitting", 1.0 - 3.0/7.0}, // ~0.571
		{"abc", "ab", 1.0 - 1.0/3.0},         // ~0.667
		{"µm", "um", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LevenshteinNormalized(tt.a, tt.b)
			// Allow small floating point tolerance
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestIdentSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64 // minimum expected score
	}{
		// Exact match after normalization
		{"voxelSize", "voxelsize", 1.0},
		{"voxel_size", "voxelSize", 1.0},
		{"SequenceNumber", "sequence_number", 1.0},

		// Similar names
		{"sliceVec", "columnVec", 0.3},
		{"acquisitionTime", "acquisitionNumber", 0.5},

		// Different names
		{"echoTime", "voxelGap", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := IdentSimilarity(tt.a, tt.b)
			if result < tt.minScore {
				t.Errorf("IdentSimilarity(%q, %q) = %f, want >= %f",
					tt.a, tt.b, result, tt.minScore)
			}
		})
	}
}

// Benchmark tests
func BenchmarkLevenshtein(b *testing.B) {
	a := "algorithm"
	bStr := "altruistic"
	for i := 0; i < b.N; i++ {
		Levenshtein(a, bStr)
	}
}

func BenchmarkIdentSimilarity(b *testing.B) {
	a := "acquisitionNumber"
	bStr := "acquisition_number"
	for i := 0; i < b.N; i++ {
		IdentSimilarity(a, bStr)
	}
}
