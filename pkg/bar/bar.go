// Package bar encodes inline bar graphs in the status2d markup understood by dwm.
//
// The grammar has three escapes: ^c<color>^ sets the draw color,
// ^r<x>,<y>,<w>,<h>^ fills a rectangle relative to the cursor, and ^f<n>^
// moves the cursor n pixels to the right.
package bar

import (
	"fmt"
	"strings"
)

// TotalHeight is the height of the bar area every bar is centered in.
const TotalHeight = 15

// Kind selects the bar shape produced by Encode.
type Kind int

const (
	Vertical Kind = iota
	Horizontal
	HorizontalSplit
	HorizontalBordered
)

// Spec describes one bar. Percent is expected in 0-100 and is not clamped.
type Spec struct {
	Kind    Kind
	Percent int
	Width   int
	Height  int
	FG      string
	BG      string
	// Border is only used by HorizontalBordered.
	Border string
}

// Color returns the set-color escape.
func Color(c string) string {
	return "^c" + c + "^"
}

// Rect returns the filled-rectangle escape.
func Rect(x, y, w, h int) string {
	return fmt.Sprintf("^r%d,%d,%d,%d^", x, y, w, h)
}

// Forward returns the cursor-advance escape.
func Forward(n int) string {
	return fmt.Sprintf("^f%d^", n)
}

func yOffset(h int) int {
	return (TotalHeight - h) / 2
}

// VBar draws a box of w x h in bg and fills it from the bottom in fg.
func VBar(percent, w, h int, fg, bg string) string {
	fill := percent * h / 100
	y := yOffset(h)

	var b strings.Builder
	b.WriteString(Color(bg))
	b.WriteString(Rect(0, y, w, h))
	b.WriteString(Color(fg))
	b.WriteString(Rect(0, y+h-fill, w, fill))
	return b.String()
}

// HBar draws a box of w x h in bg and fills it from the left in fg.
func HBar(percent, w, h int, fg, bg string) string {
	fill := percent * w / 100
	y := yOffset(h)

	var b strings.Builder
	b.WriteString(Color(bg))
	b.WriteString(Rect(0, y, w, h))
	b.WriteString(Color(fg))
	b.WriteString(Rect(0, y, fill, h))
	return b.String()
}

// HBarSplit draws the filled part and the remainder as two adjacent
// rectangles instead of overdrawing a background box.
func HBarSplit(percent, w, h int, fg, bg string) string {
	fill := percent * w / 100
	y := yOffset(h)

	var b strings.Builder
	b.WriteString(Color(fg))
	b.WriteString(Rect(0, y, fill, h))
	b.WriteString(Color(bg))
	b.WriteString(Rect(fill, y, w-fill, h))
	return b.String()
}

// HBarBordered draws a w x h border box and a split bar inset by one pixel on each side.
func HBarBordered(percent, w, h int, fg, bg, border string) string {
	y := yOffset(h)
	return Color(border) + Rect(0, y, w, h) + Forward(1) + HBarSplit(percent, w-2, h-2, fg, bg)
}

// Encode renders s according to its Kind.
func Encode(s Spec) string {
	switch s.Kind {
	case Horizontal:
		return HBar(s.Percent, s.Width, s.Height, s.FG, s.BG)
	case HorizontalSplit:
		return HBarSplit(s.Percent, s.Width, s.Height, s.FG, s.BG)
	case HorizontalBordered:
		return HBarBordered(s.Percent, s.Width, s.Height, s.FG, s.BG, s.Border)
	default:
		return VBar(s.Percent, s.Width, s.Height, s.FG, s.BG)
	}
}
