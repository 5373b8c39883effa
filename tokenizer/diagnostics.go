package tokenizer

import (
	"sort"

	"github.com/boan-anbo/carreltex-sub000/internal/clog"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// traceUnresolvedControlWord is a non-contractual diagnostic: it never
// changes the token stream, only surfaces a closest-match guess for an
// unresolved control word via clog so a human reading trace output can
// spot a likely typo (\nwline instead of \newline). controlWordNames is
// cached once since the table never changes at runtime.
func traceUnresolvedControlWord(name string) {
	ranks := fuzzy.RankFindFold(name, controlWordNames())
	if len(ranks) == 0 {
		return
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i].Distance < ranks[j].Distance })
	best := ranks[0]
	clog.Debug("tokenizer: unresolved control word", "name", name, "closest", best.Target, "distance", best.Distance)
}

var cachedControlWordNames []string

func controlWordNames() []string {
	if cachedControlWordNames != nil {
		return cachedControlWordNames
	}
	names := make([]string, 0, len(controlWordTable))
	for k := range controlWordTable {
		names = append(names, k)
	}
	cachedControlWordNames = names
	return names
}
