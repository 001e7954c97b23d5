package sequencer

import (
	"regexp"
	"strconv"
	"strings"
)

// Dialect identifies a notation family for the variable token inside a
// sequence path.
type Dialect int

const (
	// DialectAuto asks Parse and Collapse to detect the dialect from the
	// path using registry priority. It is never stored in a Descriptor.
	DialectAuto Dialect = iota

	DialectUDIMMari
	DialectUDIMZbrush
	DialectUDIMMudbox
	DialectMayaAngle
	DialectNukeHash
	DialectNukePercent
	DialectHoudiniDollar
	DialectGlob
)

// dialectInfo is the static configuration for one dialect. The table is
// read-only after package init; there is no runtime registration API.
type dialectInfo struct {
	name  string
	dims  int
	fixed int  // mandated padding width; 0 = variable width
	base  int  // displayed axis base for dual-axis dialects
	fused bool // single linear number (Mari) instead of u/v components
}

var dialectTable = map[Dialect]dialectInfo{
	DialectUDIMMari:      {name: "udim-mari", dims: 2, fixed: 4, fused: true},
	DialectUDIMZbrush:    {name: "udim-zbrush", dims: 2, fixed: 4, base: 0},
	DialectUDIMMudbox:    {name: "udim-mudbox", dims: 2, fixed: 4, base: 1},
	DialectMayaAngle:     {name: "maya-angle", dims: 1},
	DialectNukeHash:      {name: "nuke-hash", dims: 1},
	DialectNukePercent:   {name: "nuke-percent", dims: 1},
	DialectHoudiniDollar: {name: "houdini-dollar", dims: 1},
	DialectGlob:          {name: "glob", dims: 1},
}

// Dialects returns every registered dialect in detection priority order,
// most specific first: UDIM conventions before generic frame tokens, since
// UDIM substrings are also valid numeric text.
func Dialects() []Dialect {
	return []Dialect{
		DialectUDIMMari,
		DialectUDIMZbrush,
		DialectUDIMMudbox,
		DialectMayaAngle,
		DialectNukeHash,
		DialectNukePercent,
		DialectHoudiniDollar,
		DialectGlob,
	}
}

// String returns the dialect's registry name.
func (d Dialect) String() string {
	if d == DialectAuto {
		return "auto"
	}
	if info, ok := dialectTable[d]; ok {
		return info.name
	}
	return "dialect(" + strconv.Itoa(int(d)) + ")"
}

// Dims returns the dialect's dimensionality (1 or 2), or 0 for DialectAuto
// and unregistered values.
func (d Dialect) Dims() int { return dialectTable[d].dims }

// registered reports whether d is a concrete dialect in the table.
func (d Dialect) registered() bool {
	_, ok := dialectTable[d]
	return ok
}

// priority returns the dialect's position in the detection order. Lower is
// more specific. Used by Collapse as a tie-break between equal-sized groups.
func (d Dialect) priority() int {
	for i, p := range Dialects() {
		if p == d {
			return i
		}
	}
	return len(Dialects())
}

// --- Token grammars ---

var (
	reUDIMToken    = regexp.MustCompile(`<UDIM>`)
	reDualAxis     = regexp.MustCompile(`_u(\d+|#+)_v(\d+|#+)`)
	reMayaAngle    = regexp.MustCompile(`<f(\d*)>`)
	reNukeHash     = regexp.MustCompile(`#+`)
	reNukePercent  = regexp.MustCompile(`%(?:0?(\d+))?d`)
	reHoudini      = regexp.MustCompile(`\$F(\d*)`)
	reGlob         = regexp.MustCompile(`\*+`)
	reMariLiteral  = regexp.MustCompile(`(?:^|\D)(\d{4})\.[^./\\]+$`)
	reFrameLiteral = regexp.MustCompile(`\d+`)
)

// span is one decoded variable-token occurrence: its byte range in the path,
// the implied padding width, and — when the token is a concrete number
// rather than a template form — the index it encodes.
type span struct {
	start, end int
	pad        int
	index      Index // nil for template tokens like "####" or "<f>"
}

// parseRule pairs a compiled token pattern with a decode function. Rules are
// evaluated in registry priority order by parsePath; within a path the
// rightmost decodable occurrence of a pattern wins, which protects against
// coincidental digits earlier in the name (version tags and the like).
type parseRule struct {
	name    string
	dialect Dialect
	pattern *regexp.Regexp
	// group is the submatch index holding the variable token (0 = whole
	// match). decode returns false to reject an occurrence, e.g. a 4-digit
	// run outside the UDIM numeric range.
	group  int
	decode func(groups []string) (pad int, index Index, ok bool)
}

// parseRules is the ordered rule table. Template-token forms come first,
// then the literal-number fallbacks; within each block, UDIM conventions
// precede generic frame notations.
var parseRules = []parseRule{
	{"udim-mari-token", DialectUDIMMari, reUDIMToken, 0, decodeUDIMToken},
	{"udim-zbrush", DialectUDIMZbrush, reDualAxis, 0, decodeDualBase0},
	{"udim-mudbox", DialectUDIMMudbox, reDualAxis, 0, decodeDualBase1},
	{"maya-angle", DialectMayaAngle, reMayaAngle, 0, decodeWidthGroup},
	{"nuke-hash", DialectNukeHash, reNukeHash, 0, decodeHashRun},
	{"nuke-percent", DialectNukePercent, reNukePercent, 0, decodeWidthGroup},
	{"houdini-dollar", DialectHoudiniDollar, reHoudini, 0, decodeWidthGroup},
	{"glob", DialectGlob, reGlob, 0, decodeGlobStar},
	{"udim-mari-literal", DialectUDIMMari, reMariLiteral, 1, decodeMariLiteral},
	{"frame-literal", DialectNukeHash, reFrameLiteral, 0, decodeFrameLiteral},
}

// --- Decode functions (one per rule) ---

func decodeUDIMToken(_ []string) (int, Index, bool) {
	return 4, nil, true
}

func decodeDualBase0(groups []string) (int, Index, bool) {
	return decodeDual(groups, 0)
}

func decodeDualBase1(groups []string) (int, Index, bool) {
	return decodeDual(groups, 1)
}

// decodeDual handles both the template form (_u#_v#) and the concrete form
// (_u3_v2). Displayed axis values are shifted down by the dialect's base; a
// displayed value below the base cannot exist in that convention.
func decodeDual(groups []string, base int) (int, Index, bool) {
	u, v := groups[1], groups[2]
	if strings.HasPrefix(u, "#") || strings.HasPrefix(v, "#") {
		return 4, nil, true
	}
	un, _ := strconv.Atoi(u)
	vn, _ := strconv.Atoi(v)
	if un < base || vn < base {
		return 0, nil, false
	}
	return 4, Tile{U: un - base, V: vn - base}, true
}

// decodeWidthGroup serves the token syntaxes that carry an optional width in
// their first submatch: <f4>, %04d, $F4. An absent width means unpadded.
func decodeWidthGroup(groups []string) (int, Index, bool) {
	if groups[1] == "" {
		return 0, nil, true
	}
	n, err := strconv.Atoi(groups[1])
	if err != nil {
		return 0, nil, false
	}
	return n, nil, true
}

func decodeHashRun(groups []string) (int, Index, bool) {
	return len(groups[0]), nil, true
}

func decodeGlobStar(_ []string) (int, Index, bool) {
	return 0, nil, true
}

func decodeMariLiteral(groups []string) (int, Index, bool) {
	n, _ := strconv.Atoi(groups[1])
	if n < mariOrigin || n > 9999 {
		return 0, nil, false
	}
	tile, err := TileFromLinear(n)
	if err != nil {
		return 0, nil, false
	}
	return 4, tile, true
}

func decodeFrameLiteral(groups []string) (int, Index, bool) {
	n, err := strconv.Atoi(groups[0])
	if err != nil {
		return 0, nil, false
	}
	return len(groups[0]), Frame(n), true
}

// rightmost applies one rule to a path and returns the rightmost decodable
// occurrence of its pattern.
func (r parseRule) rightmost(path string) (span, bool) {
	matches := r.pattern.FindAllStringSubmatchIndex(path, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		groups := make([]string, len(m)/2)
		for g := 0; g < len(m)/2; g++ {
			if m[2*g] >= 0 {
				groups[g] = path[m[2*g]:m[2*g+1]]
			}
		}
		pad, index, ok := r.decode(groups)
		if !ok {
			continue
		}
		return span{start: m[2*r.group], end: m[2*r.group+1], pad: pad, index: index}, true
	}
	return span{}, false
}
