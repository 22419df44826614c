package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"SeriesUID", "seriesuid"},
		{"series_uid", "seriesuid"},
		{"series-uid", "seriesuid"},
		{"SERIES_UID", "seriesuid"},
		{"voxelSize", "voxelsize"},
		{"Echo Time", "echotime"},
		{"echo.time", "echotime"},
		{"slice_vec-X", "slicevecx"},
		{"Größe\t(µm)", "größe(µm)"},
		{"", ""},
		{"__", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}
