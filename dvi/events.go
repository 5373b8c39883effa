package dvi

// EventKind tags one step of the page-layout-event stream that the writer
// emits and the validator independently re-derives, so the two sides can be
// compared as data instead of as raw bytes. Bop/Eop stand in for the design
// note's PageBreak (a page always opens and closes explicitly, including an
// empty one); Right3/Down3 stand in for MoveRight/MoveDown. Font selection
// is not modeled as an event: this codec embeds exactly one font and
// selects it once, unconditionally, right after the font definition, so it
// carries no input-dependent branching for BuildEvents to capture.
type EventKind int

const (
	EventBop EventKind = iota
	EventSetChar
	EventRight3
	EventDown3
	EventEop
)

// Event is one page-layout step. Byte is populated only for EventSetChar;
// Amount only for EventRight3/EventDown3.
type Event struct {
	Kind   EventKind
	Byte   byte
	Amount int32
}

// Options configures the layout pass: per-glyph and per-line advances in
// scaled points, and the glyph-count/line-count caps that force a wrap or a
// page break even without an explicit 0x0a/0x0c in the body.
type Options struct {
	GlyphAdvanceSP int32
	LineAdvanceSP  int32
	WrapCap        int
	PageCap        int
}

// BuildEvents is the pure layout function shared by the writer and the
// validator: given the same body bytes and Options, it always produces the
// same Event sequence. The writer serializes it; the validator re-derives
// it from a decoded byte stream and compares. ok=false (with a nil event
// slice) signals the absent/unsupported cases the caller must fail over on
// rather than treat as invalid input: non-positive advances, or a body byte
// outside [0x20..=0x7e] union {0x0a, 0x0c}.
func BuildEvents(body []byte, opts Options) (events []Event, ok bool) {
	if opts.GlyphAdvanceSP <= 0 || opts.LineAdvanceSP <= 0 {
		return nil, false
	}
	wrapCap := opts.WrapCap
	if wrapCap <= 0 {
		wrapCap = DefaultWrapCap
	}
	pageCap := opts.PageCap

	events = append(events, Event{Kind: EventBop})

	lineGlyphs := 0
	lineAccumSP := int32(0)
	pageLines := 0

	breakLine := func() {
		if lineAccumSP > 0 {
			events = append(events, Event{Kind: EventRight3, Amount: -lineAccumSP})
		}
		events = append(events, Event{Kind: EventDown3, Amount: opts.LineAdvanceSP})
		lineGlyphs = 0
		lineAccumSP = 0
		pageLines++
	}
	breakPage := func() {
		events = append(events, Event{Kind: EventEop})
		events = append(events, Event{Kind: EventBop})
		lineGlyphs = 0
		lineAccumSP = 0
		pageLines = 0
	}

	for _, b := range body {
		switch {
		case b == 0x0c:
			breakPage()
		case b == 0x0a:
			breakLine()
			if pageCap > 0 && pageLines >= pageCap {
				breakPage()
			}
		case b >= 0x20 && b <= 0x7e:
			if lineGlyphs >= wrapCap {
				breakLine()
				if pageCap > 0 && pageLines >= pageCap {
					breakPage()
				}
			}
			if lineGlyphs > 0 {
				events = append(events, Event{Kind: EventRight3, Amount: opts.GlyphAdvanceSP})
				lineAccumSP += opts.GlyphAdvanceSP
			}
			events = append(events, Event{Kind: EventSetChar, Byte: b})
			lineGlyphs++
		default:
			return nil, false
		}
	}

	events = append(events, Event{Kind: EventEop})
	return events, true
}
