package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	DeclColor ColorAttr = iota
	ElementColor
	AttrColor
	ValueColor
	TextColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[DeclColor] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[ElementColor] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[AttrColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[ValueColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[TextColor] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[SepColor] = color.RGB(255, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
