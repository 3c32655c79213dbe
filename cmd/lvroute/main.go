// Command lvroute plans routes over a location graph.
//
// Usage:
//
//	lvroute serve                      start the HTTP API
//	lvroute route --from A --to B      plan one route and print it
//	lvroute locations                  list destination names
//	lvroute algorithms                 list strategy tokens
//	lvroute generate --kind grid       write a synthetic dataset
//
// Settings come from --config (YAML), LVROUTE_* environment variables and
// built-in defaults, in that order of priority from last to first.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
