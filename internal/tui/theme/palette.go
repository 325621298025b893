package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Meeting     lipgloss.Color
	Spill       lipgloss.Color
	Today       lipgloss.Color
	Warning     lipgloss.Color

	MeetingBg     lipgloss.Color
	MeetingBgAlt  lipgloss.Color
	MeetingPastBg lipgloss.Color
	SpillBg       lipgloss.Color
	OutsideBg     lipgloss.Color // month cells outside the anchor month

	TextOnAccent  lipgloss.Color
	TextOnWarning lipgloss.Color
	TextOnToday   lipgloss.Color
	TextOnMeeting lipgloss.Color
	TextOnSpill   lipgloss.Color

	Modal ModalColors
}

// ModalColors holds modal-specific colors derived from a Theme.
type ModalColors struct {
	Bg        lipgloss.Color
	Border    lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	light := isLightTheme(t.Bg)
	meetingBg := blockBg(t.Meeting, t.Bg, light)
	meetingTextBase := coalesce(t.Meeting, t.Accent)
	spillBg := blockBg(coalesce(t.Spill, meetingTextBase), t.Bg, light)

	modalBg := coalesce(t.BaseBg, t.BgHighlight, t.Bg)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Meeting:     lipgloss.Color(t.Meeting),
		Spill:       lipgloss.Color(coalesce(t.Spill, t.Meeting)),
		Today:       lipgloss.Color(coalesce(t.Today, t.Accent)),
		Warning:     lipgloss.Color(t.Warning),

		MeetingBg:     lipgloss.Color(meetingBg),
		MeetingBgAlt:  lipgloss.Color(alternateShade(meetingBg, light)),
		MeetingPastBg: lipgloss.Color(pastBg(t.Meeting, t.Bg, light)),
		SpillBg:       lipgloss.Color(spillBg),
		OutsideBg:     lipgloss.Color(blendColors(t.Bg, t.FgMuted, 0.08)),

		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnWarning: lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),
		TextOnToday:   lipgloss.Color(chooseTextColor(coalesce(t.Today, t.Accent), t.Bg, t.Fg)),
		TextOnMeeting: lipgloss.Color(chooseTextColor(meetingBg, t.Bg, t.Fg)),
		TextOnSpill:   lipgloss.Color(chooseTextColor(spillBg, t.Bg, t.Fg)),

		Modal: ModalColors{
			Bg:        lipgloss.Color(modalBg),
			Border:    adaptiveColor(coalesce(t.ModalBorder, t.Accent)),
			Text:      adaptiveColor(coalesce(t.TextPrimary, t.Fg)),
			Muted:     adaptiveColor(coalesce(t.TextMuted, t.FgMuted)),
			Highlight: adaptiveColor(coalesce(t.Highlight, t.BgSelection, t.Accent)),
			Error:     adaptiveColor(t.Warning),
		},
	}
}

type rgb struct{ r, g, b int }

// parseColor reads a #rrggbb string. ok is false for anything else.
func parseColor(hex string) (c rgb, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return rgb{}, false
	}
	return rgb{hexByte(hex[1:3]), hexByte(hex[3:5]), hexByte(hex[5:7])}, true
}

func hexByte(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v *= 16
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			v += int(c - '0')
		case c >= 'a' && c <= 'f':
			v += int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v += int(c-'A') + 10
		}
	}
	return v
}

func (c rgb) String() string {
	const digits = "0123456789abcdef"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []int{c.r, c.g, c.b} {
		v = clamp(v, 0, 255)
		out[1+2*i] = digits[v>>4]
		out[2+2*i] = digits[v&0xf]
	}
	return string(out)
}

// scale multiplies each channel by factor and lifts it to at least floor.
func (c rgb) scale(factor float64, floor int) rgb {
	f := func(v int) int {
		return max(int(float64(v)*factor), floor)
	}
	return rgb{f(c.r), f(c.g), f(c.b)}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// blockBg is the background of a meeting block drawn in accent.
func blockBg(accent, bg string, light bool) string {
	if light {
		return blendColors(accent, bg, 0.75)
	}
	return darkenColor(accent)
}

// pastBg is the background of a meeting that already ended.
func pastBg(accent, bg string, light bool) string {
	if light {
		return blendColors(accent, bg, 0.88)
	}
	return muteColor(accent)
}

// darkenColor halves a color's brightness with a floor that keeps it
// visible on dark backgrounds.
func darkenColor(hex string) string {
	c, ok := parseColor(hex)
	if !ok {
		return hex
	}
	return c.scale(0.50, 40).String()
}

// muteColor darkens harder than darkenColor.
func muteColor(hex string) string {
	c, ok := parseColor(hex)
	if !ok {
		return hex
	}
	return c.scale(0.30, 30).String()
}

// alternateShade shifts a block background so adjacent blocks in one
// column stay distinguishable.
func alternateShade(hex string, light bool) string {
	if _, ok := parseColor(hex); !ok {
		return hex
	}
	if light {
		return blendColors(hex, "#000000", 0.10)
	}
	return blendColors(hex, "#ffffff", 0.30)
}

func blendColors(a, b string, ratio float64) string {
	ca, okA := parseColor(a)
	cb, okB := parseColor(b)
	if !okA || !okB {
		return a
	}
	ratio = math.Min(math.Max(ratio, 0), 1)
	mix := func(x, y int) int {
		return int(float64(x)*(1-ratio) + float64(y)*ratio)
	}
	return rgb{mix(ca.r, cb.r), mix(ca.g, cb.g), mix(ca.b, cb.b)}.String()
}

func adaptiveColor(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: hex, Light: hex}
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1, l2 := relativeLuminance(a), relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	c, ok := parseColor(hex)
	if !ok {
		return 0
	}
	return 0.2126*srgbToLinear(c.r) + 0.7152*srgbToLinear(c.g) + 0.0722*srgbToLinear(c.b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
