package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeValidate(t *testing.T) {
	cases := []struct {
		name string
		size Size
		ok   bool
	}{
		{"Square", Size{W: 10, H: 10}, true},
		{"Strip", Size{W: 1, H: 7}, true},
		{"ZeroWidth", Size{W: 0, H: 10}, false},
		{"ZeroHeight", Size{W: 10, H: 0}, false},
		{"Negative", Size{W: -3, H: 2}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.size.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidGridSize)
			assert.Equal(t, 0, tc.size.Cells())
		})
	}
}

func TestIndexAgreesWithInBounds(t *testing.T) {
	s := Size{W: 4, H: 3}
	for y := -2; y < s.H+2; y++ {
		for x := -2; x < s.W+2; x++ {
			idx, err := s.Index(x, y)
			inside := x >= 0 && x < s.W && y >= 0 && y < s.H
			assert.Equal(t, inside, s.InBounds(x, y), "InBounds(%d,%d)", x, y)
			if !inside {
				assert.True(t, errors.Is(err, ErrOutOfBounds), "Index(%d,%d) err=%v", x, y, err)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, y*s.W+x, idx)
			cx, cy, ok := s.Coord(idx)
			require.True(t, ok)
			assert.Equal(t, Point{X: x, Y: y}, Point{X: cx, Y: cy})
		}
	}
}

func TestCoordHalfOpen(t *testing.T) {
	s := Size{W: 10, H: 10}
	_, _, ok := s.Coord(s.Cells())
	assert.False(t, ok, "one past the end must not resolve")
	_, _, ok = s.Coord(-1)
	assert.False(t, ok)
	assert.True(t, s.ValidIndex(99))
	assert.False(t, s.ValidIndex(100))
}

func TestResolutionGrid(t *testing.T) {
	r := Resolution{Width: 105, Height: 40, CellSize: 10}
	assert.Equal(t, Size{W: 11, H: 4}, r.Grid())
	assert.Equal(t, 44, r.CellCount())

	p, ok := r.CellAt(104.9, 39)
	require.True(t, ok)
	assert.Equal(t, Point{X: 10, Y: 3}, p)

	_, ok = r.CellAt(-1, 5)
	assert.False(t, ok)
	_, ok = r.CellAt(5, 400)
	assert.False(t, ok)

	degenerate := Resolution{}
	assert.Equal(t, Size{W: 1, H: 1}, degenerate.Grid())
}
