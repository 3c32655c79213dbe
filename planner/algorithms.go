package planner

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/search"
)

// aliases maps normalized algorithm spellings to strategies. Canonical tokens
// are added in init.
var aliases = map[string]search.Strategy{
	"a*":                   search.AStar,
	"astar":                search.AStar,
	"greedybestfirst":      search.Greedy,
	"bestfirst":            search.Greedy,
	"ucs":                  search.UniformCost,
	"dijkstra":             search.UniformCost,
	"dfs":                  search.DepthFirst,
	"bfs":                  search.BreadthFirst,
	"bidi":                 search.Bidirectional,
	"iddfs":                search.IterativeDeepening,
	"ids":                  search.IterativeDeepening,
	"ida*":                 search.IterativeDeepeningAStar,
	"idastar":              search.IterativeDeepeningAStar,
	"iterativedeepeninga*": search.IterativeDeepeningAStar,
}

func init() {
	for _, s := range search.Strategies() {
		aliases[normalizeToken(s.String())] = s
	}
}

// normalizeToken lowercases t and drops whitespace, hyphens and underscores,
// so "A Star", "a_star" and "a-star" collapse to "astar".
func normalizeToken(t string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '-', '_':
			return -1
		}

		return r
	}, strings.ToLower(t))
}

// ResolveAlgorithm maps a user-facing token to a search strategy.
// Matching ignores case, whitespace, hyphens and underscores.
// Errors: ErrInvalidAlgorithmToken.
func ResolveAlgorithm(token string) (search.Strategy, error) {
	if s, ok := aliases[normalizeToken(token)]; ok {
		return s, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithmToken, token)
}

// ListSupportedAlgorithms returns the canonical token of every strategy in
// canonical order.
func ListSupportedAlgorithms() []string {
	all := search.Strategies()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.String()
	}

	return out
}
