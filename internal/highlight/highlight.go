// Package highlight colors lines of text for the terminal. Files with a
// known language go through Chroma; everything else gets a small
// character-class colorizer. Both are pure functions of their input.
package highlight

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ---------------------------------------------------------------------------
// Highlight cache (global, shared across callers)
// ---------------------------------------------------------------------------

var (
	hlCache   = make(map[string]string)
	hlCacheMu sync.RWMutex
)

// maxCached bounds the cache; it is dropped wholesale when full.
const maxCached = 4000

// Highlight returns an ANSI-highlighted version of one line (no "\n") using the given
// Chroma language and theme. bgHex ("#rrggbb") is injected after every ANSI
// reset so the background color is never lost. Unknown languages return
// text unchanged.
func Highlight(text, language, theme, bgHex string) string {
	cacheKey := language + ":" + theme + ":" + bgHex + ":" + text
	hlCacheMu.RLock()
	if v, ok := hlCache[cacheKey]; ok {
		hlCacheMu.RUnlock()
		return v
	}
	hlCacheMu.RUnlock()

	lex := lexers.Get(language)
	if lex == nil {
		return text
	}
	lex = chroma.Coalesce(lex)
	sty := styles.Get(theme)
	fmtr := formatters.Get("terminal16m")
	if fmtr == nil {
		fmtr = formatters.Fallback
	}
	it, err := lex.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var buf strings.Builder
	if err := fmtr.Format(&buf, sty, it); err != nil {
		return text
	}
	// Lexers append a newline that may sit inside a styled token.
	raw := strings.ReplaceAll(buf.String(), "\n", "")

	// Chroma's terminal16m formatter skips bg on tokens that inherit from
	// the Background entry, and every \x1b[0m reset clears bg. Fix by
	// replacing resets with reset+bg so the background is always active.
	bgSeq := hexToBgSeq(bgHex)
	result := bgSeq + strings.ReplaceAll(raw, "\x1b[0m", "\x1b[0m"+bgSeq)

	hlCacheMu.Lock()
	if len(hlCache) > maxCached {
		hlCache = make(map[string]string)
	}
	hlCache[cacheKey] = result
	hlCacheMu.Unlock()
	return result
}

// hexToBgSeq converts "#rrggbb" to an ANSI 24-bit background escape sequence.
func hexToBgSeq(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

func parseHex(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	return hexByte(hex[1], hex[2]), hexByte(hex[3], hex[4]), hexByte(hex[5], hex[6]), true
}

func hexByte(hi, lo byte) int {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

// ThemeBg extracts the background hex color from a Chroma style.
// Returns "" if no background is set.
func ThemeBg(theme string) string {
	sty := styles.Get(theme)
	if sty == nil {
		return ""
	}
	bg := sty.Get(chroma.Background).Background
	if !bg.IsSet() {
		return ""
	}
	return bg.String() // "#rrggbb"
}

// Palette holds the editor chrome colors derived from a Chroma theme. The
// grays are linear blends from bg to fg; the accent is the most saturated
// token color; error comes from the Error token.
type Palette struct {
	Bg     string // theme background
	Fg     string // theme foreground
	Marker string // 8% bg→fg, cursor row background
	Gutter string // 30% bg→fg, line numbers
	Muted  string // 55% bg→fg, operators and status text
	Accent string // most saturated token color
	Error  string // Error token, blended 60% toward bg
}

// ThemePalette derives a palette from a Chroma theme name. The same theme
// always yields the same palette.
func ThemePalette(theme string) Palette {
	sty := styles.Get(theme)
	if sty == nil {
		return defaultPalette()
	}
	entry := sty.Get(chroma.Background)
	bg := "#000000"
	fg := "#c8c8c8"
	if entry.Background.IsSet() {
		bg = entry.Background.String()
	}
	if entry.Colour.IsSet() {
		fg = entry.Colour.String()
	}

	return Palette{
		Bg:     bg,
		Fg:     fg,
		Marker: lerpHex(bg, fg, 0.08),
		Gutter: lerpHex(bg, fg, 0.30),
		Muted:  lerpHex(bg, fg, 0.55),
		Accent: pickAccent(sty, fg),
		Error:  pickError(sty, bg, fg),
	}
}

func defaultPalette() Palette {
	return Palette{
		Bg: "#000000", Fg: "#c8c8c8",
		Marker: "#101010", Gutter: "#3c3c3c", Muted: "#6e6e6e",
		Accent: "#00dfff", Error: "#b04040",
	}
}

// pickAccent returns the most saturated foreground color across all tokens.
func pickAccent(sty *chroma.Style, fallback string) string {
	best := fallback
	bestSat := 0.0
	for _, tt := range sty.Types() {
		e := sty.Get(tt)
		if !e.Colour.IsSet() {
			continue
		}
		hex := e.Colour.String()
		r, g, b := hexToRGBf(hex)
		mx := max(r, g, b)
		if mx == 0 {
			continue
		}
		if sat := (mx - min(r, g, b)) / mx; sat > bestSat {
			bestSat = sat
			best = hex
		}
	}
	return best
}

func pickError(sty *chroma.Style, bg, fg string) string {
	e := sty.Get(chroma.Error)
	if !e.Colour.IsSet() {
		return lerpHex(bg, fg, 0.6)
	}
	return lerpHex(bg, e.Colour.String(), 0.6)
}

// lerpHex linearly interpolates between two hex colors at fraction t.
func lerpHex(a, b string, t float64) string {
	ar, ag, ab := hexToRGBf(a)
	br, bg, bb := hexToRGBf(b)
	return fmt.Sprintf("#%02x%02x%02x",
		clampByte(ar+(br-ar)*t),
		clampByte(ag+(bg-ag)*t),
		clampByte(ab+(bb-ab)*t),
	)
}

func hexToRGBf(hex string) (float64, float64, float64) {
	r, g, b, _ := parseHex(hex)
	return float64(r), float64(g), float64(b)
}

func clampByte(v float64) int {
	return int(min(max(v, 0), 255) + 0.5)
}
