package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/search"
)

func TestResolveAlgorithm(t *testing.T) {
	cases := map[string]search.Strategy{
		"a*":                         search.AStar,
		"A Star":                     search.AStar,
		"a-star":                     search.AStar,
		"a_star":                     search.AStar,
		"greedy":                     search.Greedy,
		"Best-First":                 search.Greedy,
		"uniform cost":               search.UniformCost,
		"UCS":                        search.UniformCost,
		"dijkstra":                   search.UniformCost,
		"dfs":                        search.DepthFirst,
		"Depth First":                search.DepthFirst,
		"bfs":                        search.BreadthFirst,
		"breadth_first":              search.BreadthFirst,
		"bidi":                       search.Bidirectional,
		"Bidirectional":              search.Bidirectional,
		"iddfs":                      search.IterativeDeepening,
		"iterative-deepening":        search.IterativeDeepening,
		"IDA*":                       search.IterativeDeepeningAStar,
		"ida-star":                   search.IterativeDeepeningAStar,
		"iterative-deepening-a-star": search.IterativeDeepeningAStar,
		"Iterative Deepening A*":     search.IterativeDeepeningAStar,
	}
	for token, want := range cases {
		got, err := planner.ResolveAlgorithm(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got, token)
	}

	for _, bad := range []string{"", "a**", "hill climbing", "beam"} {
		_, err := planner.ResolveAlgorithm(bad)
		assert.ErrorIs(t, err, planner.ErrInvalidAlgorithmToken, bad)
	}
}

func TestResolveAlgorithm_CanonicalRoundTrip(t *testing.T) {
	for _, token := range planner.ListSupportedAlgorithms() {
		s, err := planner.ResolveAlgorithm(token)
		require.NoError(t, err)
		assert.Equal(t, token, s.String())
	}
}
