package inputexpand

import (
	"github.com/lattice-substrate/json-canon/jcs"
	"github.com/lattice-substrate/json-canon/jcstoken"
)

// ToCanonicalValue builds the jcstoken.Value tree for this trace. Unlike
// report_json/tex_stats_json, the INPUT_TRACE_V0 payload has no caller-
// pinned key order, so it is free to go through RFC 8785 JCS
// canonicalization instead of a hand-rolled fixed-order writer.
func (t *Trace) ToCanonicalValue() *jcstoken.Value {
	files := make([]jcstoken.Value, len(t.Files))
	for i, f := range t.Files {
		files[i] = jcstoken.Value{Kind: jcstoken.KindString, Str: f}
	}
	return &jcstoken.Value{
		Kind: jcstoken.KindObject,
		Members: []jcstoken.Member{
			{Key: "expansions", Value: jcstoken.Value{Kind: jcstoken.KindNumber, Num: float64(t.Expansions)}},
			{Key: "max_depth", Value: jcstoken.Value{Kind: jcstoken.KindNumber, Num: float64(t.MaxDepth)}},
			{Key: "unique_files", Value: jcstoken.Value{Kind: jcstoken.KindNumber, Num: float64(t.UniqueFiles)}},
			{Key: "files", Value: jcstoken.Value{Kind: jcstoken.KindArray, Elems: files}},
		},
	}
}

// CanonicalJSON serializes the trace as RFC 8785 JCS canonical bytes.
func (t *Trace) CanonicalJSON() ([]byte, error) {
	return jcs.Serialize(t.ToCanonicalValue())
}
