package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/kurasim/internal/sim"
)

// TraceSVG renders a resonance history as an SVG polyline. The vertical
// axis is pinned to [0, 1] so traces from different runs compare directly.
func TraceSVG(samples []sim.Sample, width, height int, strokeColor string) string {
	if len(samples) < 2 {
		return ""
	}

	tMin := samples[0].Time
	tMax := samples[len(samples)-1].Time
	tRange := tMax - tMin
	if tRange == 0 {
		tRange = 1
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, s := range samples {
		x := (s.Time - tMin) / tRange * float64(width)
		y := float64(height) - s.R*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// PhaseSVG renders a population snapshot: one dot per oscillator on the
// unit circle and a line from the center for the mean-field vector of
// length R at angle Psi.
func PhaseSVG(phases []float64, size int, dotColor string) string {
	if len(phases) == 0 {
		return ""
	}

	c := float64(size) / 2
	radius := c * 0.85
	dotRadius := c * 0.02
	if dotRadius < 1.5 {
		dotRadius = 1.5
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#333333"/>
`, size, size, size, size, c, c, radius))

	var sumX, sumY float64
	for _, th := range phases {
		sumX += math.Cos(th)
		sumY += math.Sin(th)
	}
	n := float64(len(phases))
	// SVG y grows downward
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, c, c, c+sumX/n*radius, c-sumY/n*radius, dotColor))

	sb.WriteString(fmt.Sprintf(`<g fill="%s">
`, dotColor))
	for _, th := range phases {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, c+math.Cos(th)*radius, c-math.Sin(th)*radius, dotRadius))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
