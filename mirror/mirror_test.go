package mirror_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raybox/mirror"
	"github.com/katalvlaran/raybox/ray"
)

// TestDeflect_Table verifies the turn and one-cell step for every
// (angle, incoming direction) pair with a defined rule.
func TestDeflect_Table(t *testing.T) {
	const row, col = 5, 5
	cases := []struct {
		name  string
		angle int
		in    ray.Direction
		want  ray.Ray
	}{
		{"Neg90_LeftToRight", -90, ray.LeftToRight, ray.Ray{Row: 4, Column: 5, Direction: ray.BottomToTop}},
		{"Neg90_RightToLeft", -90, ray.RightToLeft, ray.Ray{Row: 4, Column: 5, Direction: ray.BottomToTop}},
		{"Neg90_TopToBottom", -90, ray.TopToBottom, ray.Ray{Row: 5, Column: 6, Direction: ray.LeftToRight}},
		{"Neg90_BottomToTop", -90, ray.BottomToTop, ray.Ray{Row: 5, Column: 6, Direction: ray.LeftToRight}},
		{"Pos90_LeftToRight", 90, ray.LeftToRight, ray.Ray{Row: 6, Column: 5, Direction: ray.TopToBottom}},
		{"Pos90_RightToLeft", 90, ray.RightToLeft, ray.Ray{Row: 6, Column: 5, Direction: ray.TopToBottom}},
		{"Pos90_TopToBottom", 90, ray.TopToBottom, ray.Ray{Row: 5, Column: 4, Direction: ray.RightToLeft}},
		{"Pos90_BottomToTop", 90, ray.BottomToTop, ray.Ray{Row: 5, Column: 4, Direction: ray.RightToLeft}},
		{"180_LeftToRight", 180, ray.LeftToRight, ray.Ray{Row: 5, Column: 4, Direction: ray.RightToLeft}},
		{"180_RightToLeft", 180, ray.RightToLeft, ray.Ray{Row: 5, Column: 6, Direction: ray.LeftToRight}},
		{"Neg180_TopToBottom", -180, ray.TopToBottom, ray.Ray{Row: 4, Column: 5, Direction: ray.BottomToTop}},
		{"Neg180_BottomToTop", -180, ray.BottomToTop, ray.Ray{Row: 6, Column: 5, Direction: ray.TopToBottom}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mirror.Mirror{Row: row, Column: col, Angle: tc.angle}
			r := ray.Ray{Row: row, Column: col, Direction: tc.in}

			out, err := m.Deflect(&r)
			require.NoError(t, err)
			assert.Equal(t, mirror.Deflected, out)
			assert.Equal(t, tc.want, r)
		})
	}
}

func TestDeflect_DeflectorNeverConsumed(t *testing.T) {
	m := mirror.Mirror{Row: 1, Column: 1, Strength: 3, Angle: 90}
	for i := 0; i < 10; i++ {
		r := ray.Ray{Row: 1, Column: 1, Direction: ray.LeftToRight}
		out, err := m.Deflect(&r)
		require.NoError(t, err)
		assert.Equal(t, mirror.Deflected, out)
	}
	assert.Equal(t, 3, m.Strength)
}

func TestDeflect_PermanentBarrier(t *testing.T) {
	m := mirror.New(2, 3, 0)
	require.True(t, m.Permanent())
	for i := 0; i < 5; i++ {
		r := ray.Ray{Row: 2, Column: 3, Direction: ray.TopToBottom}
		out, err := m.Deflect(&r)
		require.NoError(t, err)
		assert.Equal(t, mirror.Hit, out)
		assert.Equal(t, ray.Ray{Row: 2, Column: 3, Direction: ray.TopToBottom}, r, "absorbed ray must not move")
	}
	assert.Equal(t, 0, m.Strength)
}

func TestDeflect_FiniteBarrierEvaporates(t *testing.T) {
	const strength = 3
	m := mirror.New(0, 0, strength)
	for i := 1; i < strength; i++ {
		r := ray.Ray{Direction: ray.LeftToRight}
		out, err := m.Deflect(&r)
		require.NoError(t, err)
		assert.Equal(t, mirror.Hit, out, "hit %d", i)
		assert.Equal(t, strength-i, m.Strength)
	}
	r := ray.Ray{Direction: ray.LeftToRight}
	out, err := m.Deflect(&r)
	require.NoError(t, err)
	assert.Equal(t, mirror.Evaporated, out)
	assert.Equal(t, 0, m.Strength)
}

func TestDeflect_InvalidState(t *testing.T) {
	cases := []struct {
		name string
		m    mirror.Mirror
		dir  ray.Direction
	}{
		{"Angle45", mirror.Mirror{Angle: 45}, ray.LeftToRight},
		{"Angle270", mirror.Mirror{Angle: 270}, ray.TopToBottom},
		{"Angle360", mirror.Mirror{Angle: 360}, ray.TopToBottom},
		{"NegativeStrength", mirror.Mirror{Strength: -1}, ray.TopToBottom},
		{"BadDirection", mirror.Mirror{Angle: 90}, ray.Direction(9)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.m
			r := ray.Ray{Direction: tc.dir}
			_, err := m.Deflect(&r)
			assert.ErrorIs(t, err, mirror.ErrInvalidDeflectionState)
		})
	}
}

func TestMirror_String(t *testing.T) {
	m := mirror.Mirror{Row: 1, Column: 2, Strength: 3, Angle: -90}
	assert.Equal(t, "1,2,3,-90", m.String())
	assert.Equal(t, "Evaporated", mirror.Evaporated.String())
	assert.False(t, m.IsBarrier())
}
