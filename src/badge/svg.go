package badge

import (
	"fmt"
	"math"
	"strings"
)

// renderSVG produces a flat shields.io-style badge.
func (e *Engine) renderSVG(b Badge) string {
	labelWidth := int(math.Round(e.metrics.TextWidth(b.Label))) + 10
	valueWidth := int(math.Round(e.metrics.TextWidth(b.Value))) + 10
	totalWidth := labelWidth + valueWidth

	label := xmlEscape(b.Label)
	value := xmlEscape(b.Value)
	family := fmt.Sprintf("'%s',Verdana,Geneva,sans-serif", e.metrics.FontName())

	var s strings.Builder
	s.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="20">`, totalWidth))
	s.WriteString(fmt.Sprintf(`<mask id="m"><rect width="%d" height="20" rx="3" fill="#fff"/></mask>`, totalWidth))
	s.WriteString(`<g mask="url(#m)">`)
	s.WriteString(fmt.Sprintf(`<rect width="%d" height="20" fill="#555"/>`, labelWidth))
	s.WriteString(fmt.Sprintf(`<rect x="%d" width="%d" height="20" fill="%s"/>`, labelWidth, valueWidth, xmlEscape(b.Color)))
	s.WriteString(`</g>`)
	s.WriteString(fmt.Sprintf(`<g fill="#fff" text-anchor="middle" font-family="%s" font-size="%g">`,
		xmlEscape(family), e.metrics.FontSize()))
	s.WriteString(fmt.Sprintf(`<text x="%d" y="15" fill="#010101" fill-opacity=".3">%s</text>`, labelWidth/2, label))
	s.WriteString(fmt.Sprintf(`<text x="%d" y="14">%s</text>`, labelWidth/2, label))
	s.WriteString(fmt.Sprintf(`<text x="%d" y="15" fill="#010101" fill-opacity=".3">%s</text>`, labelWidth+valueWidth/2, value))
	s.WriteString(fmt.Sprintf(`<text x="%d" y="14">%s</text>`, labelWidth+valueWidth/2, value))
	s.WriteString(`</g>`)
	s.WriteString(`</svg>`)
	return s.String()
}

// xmlEscape escapes special XML characters in badge text.
func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"'", "&apos;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
