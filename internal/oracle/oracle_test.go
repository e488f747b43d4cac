package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/majority/internal/oracle"
)

func TestReference(t *testing.T) {
	tests := []struct {
		name   string
		in     []int
		want   int
		wantOK bool
	}{
		{"empty", []int{}, 0, false},
		{"nil", nil, 0, false},
		{"single", []int{42}, 42, true},
		{"pair equal", []int{5, 5}, 5, true},
		{"pair distinct", []int{1, 2}, 0, false},
		{"exact half", []int{1, 1, 2, 2}, 0, false},
		{"scattered", []int{3, 2, 3, 4, 3, 3, 3}, 3, true},
		{"negative", []int{-1, -1, -1, 2, 2}, -1, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := oracle.Reference(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReference_Strings(t *testing.T) {
	got, ok := oracle.Reference([]string{"b", "a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "b", got)
}
