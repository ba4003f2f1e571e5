package scene

import (
	"fmt"
	"strings"
	"time"
)

// Palette is the body colour cycle offered by the colour key.
var Palette = []string{"#c00000", "#ffcc00", "#0050c8", "#00a050", "#f0f0f0", "#202020"}

// NextColor returns the palette entry after current, wrapping around.
// Unknown colours restart the cycle.
func NextColor(current string) string {
	for i, c := range Palette {
		if strings.EqualFold(c, current) {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}

// Clock formats a wall-clock time as "HH : MM : SS".
func Clock(t time.Time) string {
	return fmt.Sprintf("%02d : %02d : %02d", t.Hour(), t.Minute(), t.Second())
}

// HUD is the overlay text state.
type HUD struct {
	Now     time.Time
	State   string
	Vehicle string
	Color   string
	Warning string // Empty when no banner is shown
}

// Text renders the overlay for ebitenutil.DebugPrint.
func (h HUD) Text() string {
	var b strings.Builder
	b.WriteString(Clock(h.Now))
	b.WriteString("\n----------------\n")
	if h.Vehicle == "" {
		b.WriteString("Loading vehicle...\n")
	} else {
		fmt.Fprintf(&b, "Vehicle: %s\n", h.Vehicle)
		fmt.Fprintf(&b, "Color:   %s\n", h.Color)
	}
	fmt.Fprintf(&b, "State:   %s\n", h.State)
	if h.Warning != "" {
		fmt.Fprintf(&b, "\n[!] %s\n", h.Warning)
	}
	b.WriteString("\nControls:\nW/S A/D or arrows = drive\nC = cycle colour")
	return b.String()
}

// Banner holds a warning for a fixed number of frames.
type Banner struct {
	text   string
	frames int
}

// Show replaces the banner text and restarts its countdown.
func (b *Banner) Show(text string, frames int) {
	b.text = text
	b.frames = frames
}

// Tick advances one frame and returns the text still on screen.
func (b *Banner) Tick() string {
	if b.frames <= 0 {
		return ""
	}
	b.frames--
	return b.text
}
