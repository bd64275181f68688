package encode

import (
	"strings"

	"github.com/quillml/go-quillml/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	DimColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

type rgb struct{ r, g, b int }

// palette colors names, separators and dimensions alike for every type;
// typed entries below override.
var (
	fieldRGB = rgb{128, 168, 196}
	sepRGB   = rgb{255, 0, 196}
	dimRGB   = rgb{74, 92, 138}

	typedRGB = map[Colorable]rgb{
		{Type: ir.NumberType, Attr: ValueColor}: {128, 216, 236},
		{Type: ir.StringType, Attr: ValueColor}: {8, 196, 16},
		{Type: ir.GroupType, Attr: FieldColor}:  {196, 96, 16},
		{Type: ir.GroupType, Attr: SepColor}:    {196, 128, 128},
		{Type: ir.ArrayType, Attr: SepColor}:    {198, 198, 46},
	}
)

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	set := func(able Colorable, c rgb) {
		f := color.RGB(c.r, c.g, c.b).SprintfFunc()
		colors.Map[able] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	for _, t := range ir.Types() {
		set(Colorable{Type: t, Attr: FieldColor}, fieldRGB)
		set(Colorable{Type: t, Attr: SepColor}, sepRGB)
		set(Colorable{Type: t, Attr: DimColor}, dimRGB)
	}
	for able, c := range typedRGB {
		set(able, c)
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
