package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	m "golcov.dev/pkg/golcov/internal/model"
)

func TestGetHits(t *testing.T) {
	analysis := m.NewAnalysis([]int{1, 2, 3, 5}, []int{2})

	tests := []struct {
		line int
		want m.Hits
	}{
		{1, 1},
		{2, 0},
		{3, 1},
		{4, m.HitsNone},
		{5, 1},
		{6, m.HitsNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetHits(tt.line, analysis), "line %d", tt.line)
	}
}

func TestFormatLcov(t *testing.T) {
	got := FormatLcov([]m.FileReport{
		{Filename: "a.go", Lines: []m.LineHit{{Line: 1, Hits: 1}}, Found: 1, Hit: 1},
		{Filename: "b.go", Found: 0, Hit: 0},
	})

	assert.Equal(t, "TN:\nSF:a.go\nDA:1,1\nLF:1\nLH:1\nend_of_record\n"+
		"TN:\nSF:b.go\nLF:0\nLH:0\nend_of_record\n", got)
	assert.Empty(t, FormatLcov(nil))
}
