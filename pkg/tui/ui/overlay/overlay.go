// Package overlay layers a foreground view above a background view while
// preserving the background outside the foreground bounds.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Center draws foreground centered over background within a width x height
// region. When width or height is not positive the region is measured from
// the background instead.
func Center(background string, width, height int, foreground string) string {
	bgLines := strings.Split(background, "\n")
	if width <= 0 {
		for _, line := range bgLines {
			if w := lipgloss.Width(line); w > width {
				width = w
			}
		}
	}
	if height <= 0 {
		height = len(bgLines)
	}
	if foreground == "" || width <= 0 || height <= 0 {
		return background
	}

	bgLines = normalize(bgLines, width, height)
	fgLines := strings.Split(foreground, "\n")

	fgWidth := 0
	for _, line := range fgLines {
		if w := lipgloss.Width(line); w > fgWidth {
			fgWidth = w
		}
	}
	if fgWidth > width {
		fgWidth = width
	}
	fgHeight := len(fgLines)
	if fgHeight > height {
		fgHeight = height
	}

	offsetX := (width - fgWidth) / 2
	offsetY := (height - fgHeight) / 2

	for row := 0; row < fgHeight; row++ {
		destY := offsetY + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		fgLine := pad(fgLines[row], fgWidth)
		base := bgLines[destY]
		prefix := slice(base, 0, offsetX)
		suffix := slice(base, offsetX+fgWidth, width)
		bgLines[destY] = prefix + fgLine + suffix
	}

	return strings.Join(bgLines, "\n")
}

func normalize(lines []string, width, height int) []string {
	out := make([]string, 0, height)
	for i := 0; i < height && i < len(lines); i++ {
		out = append(out, pad(lines[i], width))
	}
	for len(out) < height {
		out = append(out, strings.Repeat(" ", width))
	}
	return out
}

func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w >= width {
		return lipgloss.NewStyle().Width(width).Render(s)
	}
	return s + strings.Repeat(" ", width-w)
}

// slice cuts s to the cells [start, end), measured in display width.
func slice(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if max := lipgloss.Width(s); end > max {
		end = max
	}
	if start >= end {
		return ""
	}
	var b strings.Builder
	seen := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		next := seen + rw
		if next <= start {
			seen = next
			continue
		}
		if seen >= end || next > end {
			break
		}
		b.WriteRune(r)
		seen = next
	}
	return b.String()
}
