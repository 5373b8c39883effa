package tokenizer

// substitution is replacement bytes for a known control word, or the
// sentinel spaceSub for control words that substitute a single
// Space token instead of literal bytes.
type substitution struct {
	bytes   []byte
	isSpace bool
}

func bytesSub(b ...byte) substitution { return substitution{bytes: b} }

var spaceSub = substitution{isSpace: true}

// controlWordTable is the static control-word -> replacement mapping
// (§4.2): looked up once per control word parsed from the byte stream,
// ahead of falling back to an unresolved ControlSeq token. Kept as a single
// data table rather than a branching if/else chain, per the design note on
// preferring a data-table over branching chains for this lookup.
var controlWordTable = map[string]substitution{
	"textbackslash":        bytesSub('\\'),
	"textasciitilde":       bytesSub('~'),
	"textasciicircum":      bytesSub('^'),
	"textquotedbl":         bytesSub('"'),
	"textless":             bytesSub('<'),
	"textgreater":          bytesSub('>'),
	"textbar":              bytesSub('|'),
	"textbraceleft":        bytesSub('{'),
	"textbraceright":       bytesSub('}'),
	"textunderscore":       bytesSub('_'),
	"textquotesingle":      bytesSub('\''),
	"textasciigrave":       bytesSub('`'),
	"textquotedblleft":     bytesSub('"'),
	"textquotedblright":    bytesSub('"'),
	"textendash":           bytesSub('-'),
	"textemdash":           bytesSub('-'),
	"textellipsis":         bytesSub('.', '.', '.'),
	"textbullet":           bytesSub('*'),
	"textdegree":           bytesSub('o'),
	"textdagger":           bytesSub('+'),
	"textdaggerdbl":        bytesSub('#'),
	"textsection":          bytesSub('S'),
	"textparagraph":        bytesSub('P'),
	"textcopyright":        bytesSub('c'),
	"textregistered":       bytesSub('R'),
	"textordfeminine":      bytesSub('a'),
	"textordmasculine":     bytesSub('o'),
	"textyen":              bytesSub('Y'),
	"textsterling":         bytesSub('L'),
	"textasteriskcentered": bytesSub('*'),
	"textperiodcentered":   bytesSub('.'),
	"texttrademark":        bytesSub('T'),
	"textbrokenbar":        bytesSub('|'),
	"textcurrency":         bytesSub('C'),
	"textexclamdown":       bytesSub('!'),
	"textquestiondown":     bytesSub('?'),
	"textguillemotleft":    bytesSub('<'),
	"textguillemotright":   bytesSub('>'),
	"textquoteleft":        bytesSub('\''),
	"textquoteright":       bytesSub('\''),
	"textquotedblbase":     bytesSub('"'),
	"textquotesinglbase":   bytesSub('\''),
	"textminus":            bytesSub('-'),
	"textplus":             bytesSub('+'),
	"textequals":           bytesSub('='),
	"textcolon":            bytesSub(':'),
	"textsemicolon":        bytesSub(';'),
	"textcomma":            bytesSub(','),
	"textperiod":           bytesSub('.'),
	"textslash":            bytesSub('/'),
	"textparenleft":        bytesSub('('),
	"textparenright":       bytesSub(')'),
	"textasciimacron":      bytesSub('-'),
	"textasciibreve":       bytesSub('u'),
	"textasciidieresis":    bytesSub('"'),
	"textasciicaron":       bytesSub('v'),
	"textnumero":           bytesSub('N'),
	"textordmhyphen":       bytesSub('-'),
	"textopenbullet":       bytesSub('o'),
	"textleaf":             bytesSub('L'),
	"textmusicalnote":      bytesSub('n'),
	"textreferencemark":    bytesSub('*'),
	"textonehalf":          bytesSub('1', '/', '2'),
	"textonequarter":       bytesSub('1', '/', '4'),
	"textthreequarters":    bytesSub('3', '/', '4'),
	"texttimes":            bytesSub('*'),
	"textdiv":              bytesSub('/'),
	"textpm":               bytesSub('+', '-'),
	"textdag":              bytesSub('+'),
	"textbardbl":           bytesSub('|', '|'),
	"textasciiacute":       bytesSub('\''),
	"textasciidblquote":    bytesSub('"'),
	"textcent":             bytesSub('c'),
	"texteuro":             bytesSub('E'),
	"textperthousand":      bytesSub('0', '/', '0', '0'),
	"textpertenthousand":   bytesSub('0', '/', '0', '0', '0'),
	"textlangle":           bytesSub('<'),
	"textrangle":           bytesSub('>'),
	"textleftarrow":        bytesSub('<', '-'),
	"textrightarrow":       bytesSub('-', '>'),
	"textuparrow":          bytesSub('^'),
	"textdownarrow":        bytesSub('v'),
	"textlbrack":           bytesSub('['),
	"textrbrack":           bytesSub(']'),
	"textlbrace":           bytesSub('{'),
	"textrbrace":           bytesSub('}'),
	"textleftparen":        bytesSub('('),
	"textrightparen":       bytesSub(')'),
	"textpipe":             bytesSub('|'),
	"textasciispace":       spaceSub,
	"textvisiblehyphen":    bytesSub('-'),
	"textvisiblespace":     bytesSub('_'),
	"textfractionsolidus":  bytesSub('/'),
	"textasterisklow":      bytesSub('*'),
	"textdoublepipe":       bytesSub('|', '|'),
	"textasciicomma":       bytesSub(','),
	"textasciiperiod":      bytesSub('.'),
	"textasciicolon":       bytesSub(':'),
	"textasciiplus":        bytesSub('+'),
	"textasciiminus":       bytesSub('-'),
	"textasciiequal":       bytesSub('='),
	"textasciislash":       bytesSub('/'),
	"textmu":               bytesSub('u'),
	"textohm":              bytesSub('O'),
	"textmho":              bytesSub('m'),
	"textcelsius":          bytesSub('C'),
	"textnaira":            bytesSub('N'),
	"textpeso":             bytesSub('P'),
	"textwon":              bytesSub('W'),
	"textrupee":            bytesSub('R'),
	"textbaht":             bytesSub('B'),
	"textflorin":           bytesSub('f'),
	"textcolonmonetary":    bytesSub('C'),
	"textdong":             bytesSub('d'),
	"textlira":             bytesSub('l'),
	"textestimated":        bytesSub('e'),
	"textrecipe":           bytesSub('r'),
	"textservicemark":      bytesSub('S', 'M'),
	"textcopyleft":         bytesSub('c', 'c'),
	"textinterrobang":      bytesSub('!', '?'),
	"textalpha":            bytesSub('a'),
	"textbeta":             bytesSub('b'),
	"textgamma":            bytesSub('g'),
	"textdelta":            bytesSub('d'),
	"textepsilon":          bytesSub('e'),
	"texttheta":            bytesSub('t'),
	"textlambda":           bytesSub('l'),
	"textpi":               bytesSub('p'),
	"textrho":              bytesSub('r'),
	"textsigma":            bytesSub('s'),
	"texttau":              bytesSub('u'),
	"textphi":              bytesSub('f'),
	"textchi":              bytesSub('c'),
	"textpsi":              bytesSub('y'),
	"textomega":            bytesSub('w'),
	"textoneeighth":        bytesSub('1', '/', '8'),
	"textthreeeighths":     bytesSub('3', '/', '8'),
	"textfiveeighths":      bytesSub('5', '/', '8'),
	"textseveneighths":     bytesSub('7', '/', '8'),
	"textlnot":             bytesSub('!'),
	"textbigcircle":        bytesSub('O'),
	"textmarried":          bytesSub('M'),
	"textdivorced":         bytesSub('D'),
	"textopenstar":         bytesSub('*'),
	"textborn":             bytesSub('*'),
	"textdied":             bytesSub('+'),
	"texttildelow":         bytesSub('~'),
	"textdblhyphen":        bytesSub('-', '-'),
	"textdiscount":         bytesSub('%'),
	"textpilcrow":          bytesSub('P'),
	"pagebreak":            bytesSub(0x0c),
	"newline":              bytesSub(0x0a),
	"par":                  spaceSub,
}
