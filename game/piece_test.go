package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPieceFlags(t *testing.T) {
	// Each predicate tracks exactly its own bit, independent of the
	// other two.
	for p := Piece(0); p < 8; p++ {
		require.Equal(t, p&Black != 0, p.IsBlack(), "IsBlack(%d)", p)
		require.Equal(t, p&White != 0, p.IsWhite(), "IsWhite(%d)", p)
		require.Equal(t, p&Crown != 0, p.IsCrowned(), "IsCrowned(%d)", p)
	}
}

func TestCrownRoundTrip(t *testing.T) {
	for p := Piece(0); p < 8; p++ {
		got := p.WithCrown().WithoutCrown()
		require.Equal(t, p&(Black|White), got,
			"WithoutCrown(WithCrown(%d)) should strip the crown and keep color bits", p)
		require.True(t, p.WithCrown().IsCrowned())
		require.False(t, p.WithoutCrown().IsCrowned())
	}
}

func TestWithCrownPreservesColor(t *testing.T) {
	require.Equal(t, Black|Crown, Black.WithCrown())
	require.Equal(t, White|Crown, White.WithCrown())
	// Crowning twice is idempotent
	require.Equal(t, Black|Crown, Black.WithCrown().WithCrown())
}
