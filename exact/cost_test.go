package exact_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atsp/exact"
)

func TestTourCost_Valid(t *testing.T) {
	g := goldenInstance(t)

	// 3→1→0→2→3 = 25+10+15+30 = 80.
	cost, err := exact.TourCost(g, []int{3, 1, 0, 2, 3})
	require.NoError(t, err)
	require.Equal(t, int64(80), cost)

	// 3→0→1→2→3 = 20+10+35+30 = 95.
	cost, err = exact.TourCost(g, []int{3, 0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, int64(95), cost)
}

func TestTourCost_BadTours(t *testing.T) {
	g := goldenInstance(t)

	cases := map[string][]int{
		"too short":       {3, 0, 3},
		"not closed":      {3, 0, 1, 2, 0},
		"repeated vertex": {3, 0, 0, 2, 3},
		"out of range":    {3, 0, 7, 2, 3},
		"nil tour":        nil,
	}
	for name, tour := range cases {
		_, err := exact.TourCost(g, tour)
		require.ErrorIs(t, err, exact.ErrBadTour, name)
	}
}

func TestTourCost_GraphSentinels(t *testing.T) {
	_, err := exact.TourCost(nil, []int{0, 1, 0})
	require.ErrorIs(t, err, exact.ErrNilGraph)

	_, err = exact.TourCost(stubGraph{n: 1}, []int{0, 0})
	require.ErrorIs(t, err, exact.ErrTooFewVertices)
}
