package hue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPurityIdealPoint(t *testing.T) {
	require.Equal(t, 1.0, Purity(50, 100))
}

func TestPurityEdgesAreZero(t *testing.T) {
	for v := 0; v <= 100; v++ {
		require.InDeltaf(t, 0.0, Purity(v, 0), 1e-12, "saturation 0, luminosity %d", v)
		require.InDeltaf(t, 0.0, Purity(0, v), 1e-12, "luminosity 0, saturation %d", v)
		require.InDeltaf(t, 0.0, Purity(100, v), 1e-12, "luminosity 100, saturation %d", v)
	}
}

func TestPuritySymmetricInLuminosity(t *testing.T) {
	for l := 0; l <= 100; l++ {
		for s := 0; s <= 100; s++ {
			require.Equalf(t, Purity(l, s), Purity(100-l, s), "l=%d s=%d", l, s)
		}
	}
}

func TestPurityInUnitRange(t *testing.T) {
	for l := 0; l <= 100; l++ {
		for s := 0; s <= 100; s++ {
			p := Purity(l, s)
			require.GreaterOrEqualf(t, p, 0.0, "l=%d s=%d", l, s)
			require.LessOrEqualf(t, p, 1.0, "l=%d s=%d", l, s)
		}
	}
}

func TestPurityKnownValues(t *testing.T) {
	tests := []struct {
		name string
		l, s int
		want float64
	}{
		{"half saturation at mid luminosity", 50, 50, 0.5},
		{"full saturation, luminosity 75", 75, 100, 0.5},
		{"full saturation, luminosity 25", 25, 100, 0.5},
		{"on the diagonal", 25, 50, 0.5},
		{"above the diagonal is reflected", 40, 20, 0.2},
		{"below the diagonal", 10, 80, 0.2},
		{"clamped input", 50, 150, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, Purity(tt.l, tt.s), 1e-9)
		})
	}
}

func TestColorPurity(t *testing.T) {
	require.Equal(t, 1.0, NewColor(0, 0, 255).Purity())
	require.InDelta(t, 0.0, NewColor(128, 128, 128).Purity(), 1e-12)
}
