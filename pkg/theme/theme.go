// Package theme holds the default styling shared by elements.
//
// A Theme is a plain record. The process-wide theme is created on first
// use by Get and replaced wholesale by Set. Views may also carry their own
// theme, which elements reach through their context instead of the global.
package theme

import (
	"fmt"

	"github.com/go-drift/elements/pkg/graphics"
)

// DialMode selects how dragging maps onto a dial's value.
type DialMode int

const (
	// DialLinear maps vertical and horizontal drag distance onto the value.
	DialLinear DialMode = iota
	// DialRadial maps the pointer angle around the dial center onto the value.
	DialRadial
)

func (m DialMode) String() string {
	switch m {
	case DialRadial:
		return "radial"
	default:
		return "linear"
	}
}

// MarshalText encodes the mode by name.
func (m DialMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses "linear" or "radial".
func (m *DialMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "linear":
		*m = DialLinear
	case "radial":
		*m = DialRadial
	default:
		return fmt.Errorf("unknown dial mode %q", text)
	}
	return nil
}

// Theme contains the styling defaults consulted by elements when drawing
// and measuring.
type Theme struct {
	PanelColor        graphics.Color `yaml:"panel_color" toml:"panel_color"`
	FrameColor        graphics.Color `yaml:"frame_color" toml:"frame_color"`
	FrameHiliteColor  graphics.Color `yaml:"frame_hilite_color" toml:"frame_hilite_color"`
	FrameCornerRadius float64        `yaml:"frame_corner_radius" toml:"frame_corner_radius"`
	FrameStrokeWidth  float64        `yaml:"frame_stroke_width" toml:"frame_stroke_width"`
	ScrollbarColor    graphics.Color `yaml:"scrollbar_color" toml:"scrollbar_color"`

	DefaultButtonColor graphics.Color  `yaml:"default_button_color" toml:"default_button_color"`
	ButtonMargin       graphics.Insets `yaml:"button_margin" toml:"button_margin"`

	ControlsColor            graphics.Color `yaml:"controls_color" toml:"controls_color"`
	ControlsFrameStrokeWidth float64        `yaml:"controls_frame_stroke_width" toml:"controls_frame_stroke_width"`
	IndicatorColor           graphics.Color `yaml:"indicator_color" toml:"indicator_color"`
	IndicatorBrightColor     graphics.Color `yaml:"indicator_bright_color" toml:"indicator_bright_color"`
	IndicatorHiliteColor     graphics.Color `yaml:"indicator_hilite_color" toml:"indicator_hilite_color"`
	BasicFontColor           graphics.Color `yaml:"basic_font_color" toml:"basic_font_color"`

	SystemFont               string  `yaml:"system_font" toml:"system_font"`
	ElementBackgroundOpacity float64 `yaml:"element_background_opacity" toml:"element_background_opacity"`

	HeadingFontColor graphics.Color     `yaml:"heading_font_color" toml:"heading_font_color"`
	HeadingFont      string             `yaml:"heading_font" toml:"heading_font"`
	HeadingFontSize  float64            `yaml:"heading_font_size" toml:"heading_font_size"`
	HeadingTextAlign graphics.TextAlign `yaml:"heading_text_align" toml:"heading_text_align"`

	LabelFontColor graphics.Color     `yaml:"label_font_color" toml:"label_font_color"`
	LabelFont      string             `yaml:"label_font" toml:"label_font"`
	LabelFontSize  float64            `yaml:"label_font_size" toml:"label_font_size"`
	LabelTextAlign graphics.TextAlign `yaml:"label_text_align" toml:"label_text_align"`

	IconColor       graphics.Color `yaml:"icon_color" toml:"icon_color"`
	IconFont        string         `yaml:"icon_font" toml:"icon_font"`
	IconFontSize    float64        `yaml:"icon_font_size" toml:"icon_font_size"`
	IconButtonColor graphics.Color `yaml:"icon_button_color" toml:"icon_button_color"`

	TextBoxFontColor   graphics.Color `yaml:"text_box_font_color" toml:"text_box_font_color"`
	TextBoxFont        string         `yaml:"text_box_font" toml:"text_box_font"`
	TextBoxFontSize    float64        `yaml:"text_box_font_size" toml:"text_box_font_size"`
	TextBoxHiliteColor graphics.Color `yaml:"text_box_hilite_color" toml:"text_box_hilite_color"`
	TextBoxCaretColor  graphics.Color `yaml:"text_box_caret_color" toml:"text_box_caret_color"`
	TextBoxCaretWidth  float64        `yaml:"text_box_caret_width" toml:"text_box_caret_width"`
	InactiveFontColor  graphics.Color `yaml:"inactive_font_color" toml:"inactive_font_color"`
	InputBoxTextLimit  int            `yaml:"input_box_text_limit" toml:"input_box_text_limit"`

	TicksColor      graphics.Color `yaml:"ticks_color" toml:"ticks_color"`
	MajorTicksLevel float64        `yaml:"major_ticks_level" toml:"major_ticks_level"`
	MajorTicksWidth float64        `yaml:"major_ticks_width" toml:"major_ticks_width"`
	MinorTicksLevel float64        `yaml:"minor_ticks_level" toml:"minor_ticks_level"`
	MinorTicksWidth float64        `yaml:"minor_ticks_width" toml:"minor_ticks_width"`

	MajorGridColor graphics.Color `yaml:"major_grid_color" toml:"major_grid_color"`
	MajorGridWidth float64        `yaml:"major_grid_width" toml:"major_grid_width"`
	MinorGridColor graphics.Color `yaml:"minor_grid_color" toml:"minor_grid_color"`
	MinorGridWidth float64        `yaml:"minor_grid_width" toml:"minor_grid_width"`

	DialogButtonSize   float64         `yaml:"dialog_button_size" toml:"dialog_button_size"`
	MessageTextboxSize graphics.Extent `yaml:"message_textbox_size" toml:"message_textbox_size"`

	DialMode        DialMode `yaml:"dial_mode" toml:"dial_mode"`
	DialLinearRange float64  `yaml:"dial_linear_range" toml:"dial_linear_range"`
}

// Default returns the stock dark theme.
func Default() *Theme {
	frame := graphics.RGBA8(220, 220, 220, 80)
	indicator := graphics.RGBA8(0, 127, 255, 200)
	basicFont := graphics.RGBA8(220, 220, 220, 200)
	center := graphics.TextAlignMiddle | graphics.TextAlignCenter

	return &Theme{
		PanelColor:        graphics.RGBA8(28, 30, 34, 192),
		FrameColor:        frame,
		FrameHiliteColor:  graphics.RGBA8(220, 220, 220, 160),
		FrameCornerRadius: 3,
		FrameStrokeWidth:  1,
		ScrollbarColor:    graphics.RGBA8(80, 80, 80, 80),

		DefaultButtonColor: graphics.RGBA8(0, 0, 0, 0),
		ButtonMargin:       graphics.Insets{Left: 10, Top: 5, Right: 10, Bottom: 5},

		ControlsColor:            graphics.RGBA8(18, 49, 85, 200),
		ControlsFrameStrokeWidth: 1.5,
		IndicatorColor:           indicator,
		IndicatorBrightColor:     indicator.Level(1.5),
		IndicatorHiliteColor:     indicator.Level(2.0),
		BasicFontColor:           basicFont,

		SystemFont:               "DejaVu Sans",
		ElementBackgroundOpacity: 32.0 / 255.0,

		HeadingFontColor: basicFont,
		HeadingFont:      "Roboto",
		HeadingFontSize:  14,
		HeadingTextAlign: center,

		LabelFontColor: basicFont,
		LabelFont:      "Open Sans",
		LabelFontSize:  14,
		LabelTextAlign: center,

		IconColor:       basicFont,
		IconFont:        "elements_basic",
		IconFontSize:    16,
		IconButtonColor: graphics.RGBA8(0, 0, 0, 0),

		TextBoxFontColor:   basicFont,
		TextBoxFont:        "Open Sans",
		TextBoxFontSize:    14,
		TextBoxHiliteColor: graphics.RGBA8(0, 127, 255, 100),
		TextBoxCaretColor:  graphics.RGBA8(0, 190, 255, 255),
		TextBoxCaretWidth:  1.2,
		InactiveFontColor:  graphics.RGBA8(127, 127, 127, 150),
		InputBoxTextLimit:  1024,

		TicksColor:      graphics.RGBA8(127, 127, 127, 150),
		MajorTicksLevel: 0.5,
		MajorTicksWidth: 1.5,
		MinorTicksLevel: 0.4,
		MinorTicksWidth: 0.7,

		MajorGridColor: frame,
		MajorGridWidth: 0.5,
		MinorGridColor: indicator,
		MinorGridWidth: 0.4,

		DialogButtonSize:   100,
		MessageTextboxSize: graphics.Extent{X: 300, Y: 120},

		DialMode:        DialLinear,
		DialLinearRange: 200,
	}
}

// Copy returns an independent copy of the theme.
func (t *Theme) Copy() *Theme {
	c := *t
	return &c
}

// LabelStyle returns the text style for labels.
func (t *Theme) LabelStyle() graphics.TextStyle {
	return graphics.TextStyle{Color: t.LabelFontColor, FontFamily: t.LabelFont, FontSize: t.LabelFontSize}
}

// HeadingStyle returns the text style for headings.
func (t *Theme) HeadingStyle() graphics.TextStyle {
	return graphics.TextStyle{Color: t.HeadingFontColor, FontFamily: t.HeadingFont, FontSize: t.HeadingFontSize}
}
