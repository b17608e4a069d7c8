package badge

import (
	"strings"
	"testing"

	"github.com/sofmeright/gauntlet/src/verify"
)

func report(results ...verify.MethodResult) *verify.Report {
	return &verify.Report{Results: results}
}

func TestFromReport(t *testing.T) {
	cases := []struct {
		name      string
		rep       *verify.Report
		wantValue string
		wantColor string
	}{
		{
			"all functional",
			report(
				verify.MethodResult{Built: true, Functional: true},
				verify.MethodResult{Built: true, Functional: true},
			),
			"2/2 functional", "#4c1",
		},
		{
			"partial",
			report(
				verify.MethodResult{Built: true, Functional: true},
				verify.MethodResult{Built: true},
			),
			"1/2 functional", "#dfb317",
		},
		{
			"nothing built",
			report(verify.MethodResult{}),
			"0/1 functional", "#e05d44",
		},
	}
	for _, tc := range cases {
		b := FromReport(tc.rep, "")
		if b.Value != tc.wantValue {
			t.Errorf("%s: value = %q, want %q", tc.name, b.Value, tc.wantValue)
		}
		if b.Color != tc.wantColor {
			t.Errorf("%s: color = %q, want %q", tc.name, b.Color, tc.wantColor)
		}
		if b.Label != "builds" {
			t.Errorf("%s: default label = %q", tc.name, b.Label)
		}
	}
}

func TestGenerateSVG(t *testing.T) {
	e := New(EstimatedMetrics(11))
	svg := e.Generate(Badge{Label: "builds", Value: "5/6 functional", Color: "#dfb317"})

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		">builds<",
		">5/6 functional<",
		`fill="#dfb317"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q\n%s", want, svg)
		}
	}
}

func TestGenerateEscapesText(t *testing.T) {
	e := New(EstimatedMetrics(11))
	svg := e.Generate(Badge{Label: "a<b", Value: `"x" & 'y'`, Color: "#4c1"})

	if strings.Contains(svg, "a<b") {
		t.Error("label not escaped")
	}
	for _, want := range []string{"a&lt;b", "&quot;x&quot;", "&amp;", "&apos;y&apos;"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing escaped form %q", want)
		}
	}
}

func TestEstimatedMetricsWidth(t *testing.T) {
	m := EstimatedMetrics(11)
	if m.TextWidth("") != 0 {
		t.Error("empty string has nonzero width")
	}
	if m.TextWidth("abcd") <= m.TextWidth("ab") {
		t.Error("longer text should measure wider")
	}
}
