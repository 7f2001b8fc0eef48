package encode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/printer"
	"github.com/signadot/yabe/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	AnchorColor
	InsertColor
	DeleteColor
	ContextColor
)

type Colors struct {
	Map map[Colorable][]color.Attribute
}

func NewColors() *Colors {
	colors := &Colors{
		Map: map[Colorable][]color.Attribute{},
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.StringType
	colors.Map[able] = []color.Attribute{color.FgGreen}
	able.Attr = FieldColor
	colors.Map[able] = []color.Attribute{color.FgHiCyan}
	able.Attr = AnchorColor
	colors.Map[able] = []color.Attribute{color.FgHiYellow}
	able.Attr = ValueColor

	able.Type = ir.IntType
	colors.Map[able] = []color.Attribute{color.FgHiMagenta}
	able.Type = ir.RealType
	colors.Map[able] = []color.Attribute{color.FgHiMagenta}

	able.Type = ir.BoolType
	colors.Map[able] = []color.Attribute{color.FgCyan}

	// line diffs are not typed
	able.Type = ir.NullType
	able.Attr = InsertColor
	colors.Map[able] = []color.Attribute{color.FgGreen}
	able.Attr = DeleteColor
	colors.Map[able] = []color.Attribute{color.FgRed}
	able.Attr = ContextColor
	colors.Map[able] = []color.Attribute{color.Faint}
	return colors
}

func (c *Colors) Get(t ir.Type, a ColorAttr) []color.Attribute {
	return c.Map[Colorable{Type: t, Attr: a}]
}

// Color wraps s in the escape sequences for (t, a), regardless of whether
// the output is a terminal.
func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	attrs := c.Get(t, a)
	if len(attrs) == 0 {
		return s
	}
	col := color.New(attrs...)
	col.EnableColor()
	return col.Sprint(s)
}

// Line colors one line of a line diff.
func (c *Colors) Line(a ColorAttr, s string) string {
	return c.Color(ir.NullType, a, s)
}

func (c *Colors) property(t ir.Type, a ColorAttr) func() *printer.Property {
	attrs := c.Get(t, a)
	if len(attrs) == 0 {
		return nil
	}
	return func() *printer.Property {
		return &printer.Property{
			Prefix: escape(attrs...),
			Suffix: escape(color.Reset),
		}
	}
}

func (c *Colors) printer() *printer.Printer {
	return &printer.Printer{
		MapKey: c.property(ir.StringType, FieldColor),
		Anchor: c.property(ir.StringType, AnchorColor),
		Alias:  c.property(ir.StringType, AnchorColor),
		Bool:   c.property(ir.BoolType, ValueColor),
		String: c.property(ir.StringType, ValueColor),
		Number: c.property(ir.IntType, ValueColor),
	}
}

func escape(attrs ...color.Attribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = strconv.Itoa(int(a))
	}
	return fmt.Sprintf("\x1b[%sm", strings.Join(parts, ";"))
}
