package dvi

import "golang.org/x/crypto/blake2b"

// EventsDigest hashes an Event sequence so the writer's emitted stream and
// the validator's re-derived stream can be compared as a single fixed-size
// value instead of a byte-by-byte diff.
func EventsDigest(events []Event) [32]byte {
	var buf []byte
	for _, e := range events {
		buf = append(buf, byte(e.Kind), e.Byte)
		buf = appendInt32(buf, e.Amount)
	}
	return blake2b.Sum256(buf)
}

func appendInt32(buf []byte, v int32) []byte {
	u := uint32(v)
	return append(buf, byte(u>>24), byte(u>>16), byte(u>>8), byte(u))
}

func eventsEqual(a, b []Event) bool {
	return EventsDigest(a) == EventsDigest(b)
}
