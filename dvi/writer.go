package dvi

// Write lays body out with opts and serializes the result as a DVI v2
// byte stream: preamble, font definition/select, one BOP/body/EOP run per
// page, postamble, post-postamble, and 0xDF trailer padding to a multiple
// of 4 bytes. ok=false mirrors BuildEvents's absent case.
func Write(body []byte, opts Options) (out []byte, ok bool) {
	events, ok := BuildEvents(body, opts)
	if !ok {
		return nil, false
	}
	return serialize(events), true
}

func serialize(events []Event) []byte {
	var out []byte

	out = append(out, Pre, ID)
	out = appendU32BE(out, Num)
	out = appendU32BE(out, Den)
	out = appendU32BE(out, Mag)
	out = append(out, 0) // comment_len

	out = appendFontDef(out)
	out = append(out, FntNumBase) // select font 0

	var bopOffsets []int
	prevBop := int32(-1)

	for _, e := range events {
		switch e.Kind {
		case EventBop:
			bopOffsets = append(bopOffsets, len(out))
			out = append(out, Bop)
			for i := 0; i < 10; i++ {
				out = appendI32BE(out, 0)
			}
			out = appendI32BE(out, prevBop)
			prevBop = int32(bopOffsets[len(bopOffsets)-1])
		case EventEop:
			out = append(out, Eop)
		case EventSetChar:
			out = append(out, e.Byte)
		case EventRight3:
			out = append(out, Right3)
			out = appendI24BE(out, e.Amount)
		case EventDown3:
			out = append(out, Down3)
			out = appendI24BE(out, e.Amount)
		}
	}

	postOffset := len(out)
	lastBop := int32(-1)
	if len(bopOffsets) > 0 {
		lastBop = int32(bopOffsets[len(bopOffsets)-1])
	}
	out = append(out, Post)
	out = appendU32BE(out, uint32(lastBop))
	out = appendU32BE(out, Num)
	out = appendU32BE(out, Den)
	out = appendU32BE(out, Mag)
	out = appendU32BE(out, 0) // maxv
	out = appendU32BE(out, 0) // maxh
	out = appendU16BE(out, 0) // maxstack
	out = appendU16BE(out, uint16(len(bopOffsets)))

	out = append(out, PostPost)
	out = appendU32BE(out, uint32(postOffset))
	out = append(out, ID)

	padding := 4 - len(out)%4
	if padding < 4 {
		padding += 4
	}
	for i := 0; i < padding; i++ {
		out = append(out, Trailer)
	}
	return out
}

func appendFontDef(out []byte) []byte {
	f := embeddedFont
	out = append(out, FntDef1, f.Index)
	out = appendU32BE(out, f.Checksum)
	out = appendU32BE(out, f.DesignSP)
	out = appendU32BE(out, f.ScaleSP)
	out = append(out, byte(len(f.Name)))
	out = append(out, f.Name...)
	return out
}

func appendU32BE(out []byte, v uint32) []byte {
	return append(out, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func appendU16BE(out []byte, v uint16) []byte {
	return append(out, byte(v>>8), byte(v))
}

func appendI32BE(out []byte, v int32) []byte {
	return appendU32BE(out, uint32(v))
}

// appendI24BE writes a three-byte signed big-endian amount, the DVI
// RIGHT3/DOWN3 encoding.
func appendI24BE(out []byte, v int32) []byte {
	u := uint32(v) & 0x00ffffff
	return append(out, byte(u>>16), byte(u>>8), byte(u))
}
