package dvi

// Validate is the writer's mirror: it decodes bytes back into a page-layout
// event stream, independently re-derives the expected stream from the same
// body and opts via BuildEvents, and accepts only if the two event streams
// are identical and the surrounding framing (magic numbers, back-pointers,
// trailer) checks out.
func Validate(bytes []byte, body []byte, opts Options) bool {
	decoded, ok := decode(bytes)
	if !ok {
		return false
	}
	expected, ok := BuildEvents(body, opts)
	if !ok {
		return false
	}
	return eventsEqual(decoded, expected)
}

type byteCursor struct {
	data  []byte
	index int
}

func (c *byteCursor) readByte() (byte, bool) {
	if c.index >= len(c.data) {
		return 0, false
	}
	b := c.data[c.index]
	c.index++
	return b, true
}

func (c *byteCursor) expectByte(want byte) bool {
	got, ok := c.readByte()
	return ok && got == want
}

func (c *byteCursor) readU32BE() (uint32, bool) {
	if c.index+4 > len(c.data) {
		return 0, false
	}
	v := uint32(c.data[c.index])<<24 | uint32(c.data[c.index+1])<<16 | uint32(c.data[c.index+2])<<8 | uint32(c.data[c.index+3])
	c.index += 4
	return v, true
}

func (c *byteCursor) expectU32BE(want uint32) bool {
	got, ok := c.readU32BE()
	return ok && got == want
}

func (c *byteCursor) readU16BE() (uint16, bool) {
	if c.index+2 > len(c.data) {
		return 0, false
	}
	v := uint16(c.data[c.index])<<8 | uint16(c.data[c.index+1])
	c.index += 2
	return v, true
}

func (c *byteCursor) readI32BE() (int32, bool) {
	v, ok := c.readU32BE()
	return int32(v), ok
}

func (c *byteCursor) readI24BE() (int32, bool) {
	if c.index+3 > len(c.data) {
		return 0, false
	}
	u := uint32(c.data[c.index])<<16 | uint32(c.data[c.index+1])<<8 | uint32(c.data[c.index+2])
	c.index += 3
	if u&0x800000 != 0 {
		u |= 0xff000000
	}
	return int32(u), true
}

// decode parses a full DVI v2 byte stream into its page-layout event
// sequence, checking every fixed-offset magic number, the font-def/select
// framing, the post/postpost back-pointers, and the trailer run along the
// way.
func decode(data []byte) ([]Event, bool) {
	if len(data) == 0 || len(data)%4 != 0 {
		return nil, false
	}
	c := &byteCursor{data: data}

	if !c.expectByte(Pre) || !c.expectByte(ID) {
		return nil, false
	}
	if !c.expectU32BE(Num) || !c.expectU32BE(Den) || !c.expectU32BE(Mag) {
		return nil, false
	}
	if !c.expectByte(0) {
		return nil, false
	}

	if !decodeFontDef(c) {
		return nil, false
	}
	if !c.expectByte(FntNumBase) {
		return nil, false
	}

	var events []Event
	var bopOffsets []int
	prevBop := int32(-1)

	for {
		bopOffset := c.index
		b, ok := c.readByte()
		if !ok {
			return nil, false
		}
		if b == Post {
			c.index--
			break
		}
		if b != Bop {
			return nil, false
		}
		for i := 0; i < 10; i++ {
			if !c.expectI32BE(0) {
				return nil, false
			}
		}
		gotPrev, ok := c.readI32BE()
		if !ok || gotPrev != prevBop {
			return nil, false
		}
		bopOffsets = append(bopOffsets, bopOffset)
		prevBop = int32(bopOffset)
		events = append(events, Event{Kind: EventBop})

		for {
			op, ok := c.readByte()
			if !ok {
				return nil, false
			}
			switch {
			case op == Eop:
				events = append(events, Event{Kind: EventEop})
			case op == Right3:
				amount, ok := c.readI24BE()
				if !ok {
					return nil, false
				}
				events = append(events, Event{Kind: EventRight3, Amount: amount})
				continue
			case op == Down3:
				amount, ok := c.readI24BE()
				if !ok {
					return nil, false
				}
				events = append(events, Event{Kind: EventDown3, Amount: amount})
				continue
			case op <= SetCharMax:
				events = append(events, Event{Kind: EventSetChar, Byte: op})
				continue
			default:
				return nil, false
			}
			break
		}
	}

	if len(bopOffsets) == 0 {
		return nil, false
	}
	postOffset := c.index
	if !c.expectByte(Post) {
		return nil, false
	}
	if !c.expectU32BE(uint32(bopOffsets[len(bopOffsets)-1])) {
		return nil, false
	}
	if !c.expectU32BE(Num) || !c.expectU32BE(Den) || !c.expectU32BE(Mag) {
		return nil, false
	}
	if !c.expectU32BE(0) || !c.expectU32BE(0) {
		return nil, false
	}
	maxstack, ok := c.readU16BE()
	if !ok || maxstack != 0 {
		return nil, false
	}
	pages, ok := c.readU16BE()
	if !ok || int(pages) != len(bopOffsets) {
		return nil, false
	}

	if !c.expectByte(PostPost) {
		return nil, false
	}
	if !c.expectU32BE(uint32(postOffset)) {
		return nil, false
	}

	if !finishPostPost(c, data) {
		return nil, false
	}
	return events, true
}

func (c *byteCursor) expectI32BE(want int32) bool {
	got, ok := c.readI32BE()
	return ok && got == want
}

// decodeFontDef checks the font-definition record against the single
// embedded font this codec ever writes, byte for byte.
func decodeFontDef(c *byteCursor) bool {
	f := embeddedFont
	if !c.expectByte(FntDef1) {
		return false
	}
	if !c.expectByte(f.Index) {
		return false
	}
	if !c.expectU32BE(f.Checksum) || !c.expectU32BE(f.DesignSP) || !c.expectU32BE(f.ScaleSP) {
		return false
	}
	if !c.expectByte(byte(len(f.Name))) {
		return false
	}
	for _, want := range f.Name {
		if !c.expectByte(want) {
			return false
		}
	}
	return true
}

func finishPostPost(c *byteCursor, data []byte) bool {
	if !c.expectByte(ID) {
		return false
	}
	trailerLen := len(data) - c.index
	if trailerLen < 4 || trailerLen > 7 {
		return false
	}
	for _, b := range data[c.index:] {
		if b != Trailer {
			return false
		}
	}
	return true
}
