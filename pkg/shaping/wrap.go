package shaping

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// buildLayout wraps text to maxWidth and assembles the layout result.
// The line height is uniform across the layout.
func buildLayout(text string, maxWidth, ascent, descent, lineHeight float64, measure func(string) float64) *TextLayout {
	if maxWidth < 0 || math.IsNaN(maxWidth) || math.IsInf(maxWidth, 0) {
		maxWidth = 0
	}
	lines := layoutLines(text, maxWidth, measure)
	width := maxWidth
	if width == 0 {
		for _, line := range lines {
			width = math.Max(width, line.Width)
		}
	}
	return &TextLayout{
		Width:      width,
		Height:     lineHeight * float64(len(lines)),
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
		Lines:      lines,
	}
}

// layoutLines splits text into paragraphs and wraps each within
// maxWidth. A maxWidth of zero disables wrapping.
func layoutLines(text string, maxWidth float64, measure func(string) float64) []Line {
	paragraphs := strings.Split(text, "\n")
	lines := make([]Line, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			lines = append(lines, Line{})
			continue
		}
		if maxWidth == 0 {
			lines = append(lines, Line{Text: paragraph, Width: measure(paragraph)})
			continue
		}
		for _, line := range wrapParagraph(paragraph, maxWidth, measure) {
			lines = append(lines, Line{Text: line, Width: measure(line)})
		}
	}
	if len(lines) == 0 {
		lines = append(lines, Line{})
	}
	return lines
}

// wrapParagraph greedily packs grapheme clusters into lines, breaking
// at the last whitespace that fits. A word wider than maxWidth breaks
// mid-word; at least one cluster is consumed per line.
func wrapParagraph(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	start := 0
	for start < len(text) {
		lastBreak := -1
		lastFit := -1
		clusters := uniseg.NewGraphemes(text[start:])
		for clusters.Next() {
			_, to := clusters.Positions()
			next := start + to
			if measure(text[start:next]) > maxWidth {
				break
			}
			lastFit = next
			if clusterIsSpace(clusters.Str()) {
				lastBreak = next
			}
		}
		if lastFit == -1 {
			first := uniseg.NewGraphemes(text[start:])
			if !first.Next() {
				break
			}
			_, to := first.Positions()
			lastFit = start + to
		}
		cut := lastFit
		if lastFit < len(text) && lastBreak > start && lastBreak < lastFit {
			cut = lastBreak
		}
		line := strings.TrimRightFunc(text[start:cut], unicode.IsSpace)
		lines = append(lines, line)
		start = cut
		for start < len(text) {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func clusterIsSpace(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsSpace(r)
}
