package badge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Metrics provides text width measurement for badge layout.
type Metrics struct {
	name     string
	size     float64
	advances map[rune]float64 // measured glyph advances (printable ASCII)
	fallback float64          // width for unmapped runes
}

// TextWidth returns the pixel width of s at the configured size.
func (m *Metrics) TextWidth(s string) float64 {
	var w float64
	for _, r := range s {
		if adv, ok := m.advances[r]; ok {
			w += adv
		} else {
			w += m.fallback
		}
	}
	return w
}

// FontName returns the font family name used in the SVG.
func (m *Metrics) FontName() string { return m.name }

// FontSize returns the configured point size.
func (m *Metrics) FontSize() float64 { return m.size }

// EstimatedMetrics approximates glyph widths from the point size alone,
// for hosts without a font file configured. Badges come out slightly
// wider than strictly needed, never clipped.
func EstimatedMetrics(size float64) *Metrics {
	if size <= 0 {
		size = 11
	}
	return &Metrics{
		name:     "Verdana",
		size:     size,
		fallback: size * 0.62,
	}
}

// LoadFontFile measures glyph advances from a TTF/OTF file for exact text
// layout.
func LoadFontFile(path string, size float64) (*Metrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file %s: %w", path, err)
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("creating face for %s: %w", path, err)
	}
	defer face.Close()

	advances := make(map[rune]float64, 95)
	var total float64
	var count int
	for r := rune(32); r <= 126; r++ {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		px := float64(adv) / 64.0 // fixed.Int26_6 → float64
		advances[r] = px
		total += px
		count++
	}

	fallback := size * 0.62
	if count > 0 {
		fallback = total / float64(count)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	buf := &sfnt.Buffer{}
	if n, err := f.Name(buf, sfnt.NameIDFamily); err == nil && n != "" {
		name = n
	}

	return &Metrics{
		name:     name,
		size:     size,
		advances: advances,
		fallback: fallback,
	}, nil
}
