package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	InsertColor ColorAttr = iota
	RetainColor
	DeleteColor
	EmbedColor
	KeyColor
	ValueColor
	NullColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			InsertColor: color.RGB(8, 196, 16).SprintfFunc(),
			RetainColor: color.RGB(128, 168, 196).SprintfFunc(),
			DeleteColor: color.RGB(220, 50, 47).SprintfFunc(),
			EmbedColor:  color.RGB(198, 198, 46).SprintfFunc(),
			KeyColor:    color.RGB(196, 96, 16).SprintfFunc(),
			ValueColor:  color.RGB(128, 216, 236).SprintfFunc(),
			NullColor:   color.RGB(168, 0, 196).SprintfFunc(),
			SepColor:    color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
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
