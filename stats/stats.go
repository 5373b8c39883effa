// Package stats is the stats builder (§4.5): walks a post-expansion token
// stream counting token-kind populations and group depth, and renders the
// result as a fixed-key-order JSON object.
package stats

import (
	"strconv"
	"strings"

	"github.com/boan-anbo/carreltex-sub000/reason"
	"github.com/boan-anbo/carreltex-sub000/token"
)

// Stats is the population count the builder accumulates.
type Stats struct {
	TokenCount      uint64
	ControlSeqCount uint64
	CharCount       uint64
	SpaceCount      uint64
	BeginGroupCount uint64
	EndGroupCount   uint64
	MaxGroupDepth   uint64
}

// Build walks tokens once, failing closed with stats_build_failed on an
// end-before-begin group or a stream that ends at nonzero depth.
func Build(tokens []token.Token) (*Stats, error) {
	var s Stats
	var depth uint64
	for _, t := range tokens {
		switch t.Kind {
		case token.ControlSeq:
			s.ControlSeqCount++
		case token.Char:
			s.CharCount++
		case token.Space:
			s.SpaceCount++
		case token.BeginGroup:
			s.BeginGroupCount++
			depth++
			if depth > s.MaxGroupDepth {
				s.MaxGroupDepth = depth
			}
		case token.EndGroup:
			if depth == 0 {
				return nil, reason.New(reason.StatsBuildFailed)
			}
			s.EndGroupCount++
			depth--
		}
	}
	if depth != 0 {
		return nil, reason.New(reason.StatsBuildFailed)
	}
	s.TokenCount = uint64(len(tokens))
	return &s, nil
}

// JSON renders the fixed key order pinned by the external contract:
// token_count, control_seq_count, char_count, space_count,
// begin_group_count, end_group_count, max_group_depth.
func (s *Stats) JSON() string {
	var b strings.Builder
	b.WriteString(`{"token_count":`)
	b.WriteString(strconv.FormatUint(s.TokenCount, 10))
	b.WriteString(`,"control_seq_count":`)
	b.WriteString(strconv.FormatUint(s.ControlSeqCount, 10))
	b.WriteString(`,"char_count":`)
	b.WriteString(strconv.FormatUint(s.CharCount, 10))
	b.WriteString(`,"space_count":`)
	b.WriteString(strconv.FormatUint(s.SpaceCount, 10))
	b.WriteString(`,"begin_group_count":`)
	b.WriteString(strconv.FormatUint(s.BeginGroupCount, 10))
	b.WriteString(`,"end_group_count":`)
	b.WriteString(strconv.FormatUint(s.EndGroupCount, 10))
	b.WriteString(`,"max_group_depth":`)
	b.WriteString(strconv.FormatUint(s.MaxGroupDepth, 10))
	b.WriteString("}")
	return b.String()
}
