package macro

import (
	"golang.org/x/crypto/blake2b"

	"github.com/boan-anbo/carreltex-sub000/token"
)

// macroBodyDigest hashes a macro body's token encoding with BLAKE2b-256, the
// same content-hashing idiom the teacher's planner uses to short-circuit
// structural-equality checks before falling back to an exact comparison.
func macroBodyDigest(def *MacroDef) [32]byte {
	return blake2b.Sum256(encodeTokensForHash(def.Body))
}

func encodeTokensForHash(tokens []token.Token) []byte {
	var buf []byte
	for _, t := range tokens {
		buf = append(buf, byte(t.Kind), t.Byte)
		buf = append(buf, t.Name...)
		buf = append(buf, 0)
	}
	return buf
}
