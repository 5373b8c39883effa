package macro

import "github.com/boan-anbo/carreltex-sub000/token"

// controlSeqToGroupToken maps \begingroup/\bgroup/\endgroup/\egroup to
// the plain group token they act as synonyms for.
func controlSeqToGroupToken(name []byte) (token.Token, bool) {
	switch string(name) {
	case "begingroup", "bgroup":
		return token.BeginGroupTok, true
	case "endgroup", "egroup":
		return token.EndGroupTok, true
	default:
		return token.Token{}, false
	}
}

func isEndgroupSynonym(name []byte) bool {
	s := string(name)
	return s == "endgroup" || s == "egroup"
}
