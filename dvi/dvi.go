// Package dvi is the DVI v2 binary codec (§4.7): a writer that lays out a
// body-byte stream into movement/glyph opcodes across pages, and a
// validator that is its mirror image, parsing bytes back into the same
// page-layout-event shape so the two sides can be compared directly.
package dvi

const (
	Pre      = 247
	Bop      = 139
	Eop      = 140
	Post     = 248
	PostPost = 249
	ID       = 2
	Trailer  = 223

	Num = 25_400_000
	Den = 473_628_672
	Mag = 1000

	FntDef1    = 243
	FntNumBase = 171 // font-select opcode for font index 0 (fnt_num_0)

	Right3 = 145
	Down3  = 157

	SetCharMax = 127 // set_char_0..127 opcodes double as literal byte values

	// DefaultWrapCap is the default glyph count per line the writer wraps
	// at when the caller leaves Options.WrapCap unset (zero or negative).
	DefaultWrapCap = 80
)

// fontDefNameLen records the length of embeddedFont.Name ("compiler-font");
// nothing reads it. The definition record that follows the fnt_def1 opcode
// (index, checksum, design size, scale, name-length, name) is
// 1+4+4+4+1+fontDefNameLen = 27 bytes, 28 counting the opcode. Writer and
// validator both derive the record from embeddedFont, so they always agree.
const fontDefNameLen = 13

// fontDef is the single embedded font's fixed definition record (§4.7 step
// 2): checksum/scale/design-size are fixed placeholder values since no real
// font metrics exist in this deterministic codec.
type fontDef struct {
	Index    byte
	Checksum uint32
	DesignSP uint32
	ScaleSP  uint32
	Name     []byte
}

var embeddedFont = fontDef{
	Index:    0,
	Checksum: 0,
	DesignSP: 655_360,
	ScaleSP:  655_360,
	Name:     []byte("compiler-font"),
}
