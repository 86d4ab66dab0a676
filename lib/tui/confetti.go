// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ConfettiDuration is how long a celebration burst lasts from ignition
// to the last particle leaving the screen.
const ConfettiDuration = 3 * time.Second

// ConfettiTickInterval is the re-render interval while a burst is
// active. 100ms gives ~10fps, enough for readable particle motion.
const ConfettiTickInterval = 100 * time.Millisecond

// confettiCount is the number of particles in one burst.
const confettiCount = 60

// confettiGlyphs are the particle shapes, picked at random per particle.
var confettiGlyphs = []string{"▪", "●", "◆", "▰", "■", "✦"}

// confettiColors is the festive palette, deliberately outside the
// theme: a celebration should look the same on every theme.
var confettiColors = []lipgloss.Color{
	lipgloss.Color("196"), // red
	lipgloss.Color("208"), // orange
	lipgloss.Color("220"), // yellow
	lipgloss.Color("114"), // green
	lipgloss.Color("75"),  // blue
	lipgloss.Color("141"), // purple
	lipgloss.Color("213"), // pink
}

// confettiParticle is one falling piece. Position is in fractional
// screen cells so slow particles still move between ticks.
type confettiParticle struct {
	x, y     float64
	fallRate float64 // Cells per second.
	drift    float64 // Horizontal cells per second, signed.
	glyph    string
	color    lipgloss.Color
}

// Confetti is the celebration effect fired when a settled ticket
// completes a win streak. A burst drops particles from above the top
// edge across the full terminal width; the effect deactivates itself
// after [ConfettiDuration].
//
// The model owns one Confetti value and advances it from a tick
// command while [Active] reports true.
type Confetti struct {
	particles []confettiParticle
	ignition  time.Time
	width     int
	height    int
	active    bool
}

// Burst starts a new celebration sized to the current terminal. An
// in-flight burst is replaced, which resets the clock.
func (confetti *Confetti) Burst(width, height int, now time.Time) {
	confetti.width = width
	confetti.height = height
	confetti.ignition = now
	confetti.active = true

	confetti.particles = confetti.particles[:0]
	for i := 0; i < confettiCount; i++ {
		confetti.particles = append(confetti.particles, confettiParticle{
			x: rand.Float64() * float64(width),
			// Stagger starting rows above the screen so the burst
			// rains in rather than appearing all at once.
			y:        -rand.Float64() * float64(height),
			fallRate: 4 + rand.Float64()*8,
			drift:    (rand.Float64() - 0.5) * 3,
			glyph:    confettiGlyphs[rand.Intn(len(confettiGlyphs))],
			color:    confettiColors[rand.Intn(len(confettiColors))],
		})
	}
}

// Active reports whether a burst is still running. The tick timer
// should keep firing while this is true.
func (confetti *Confetti) Active() bool {
	return confetti.active
}

// Advance moves every particle according to the time elapsed since
// the previous call and deactivates the burst once its duration has
// passed.
func (confetti *Confetti) Advance(now time.Time, elapsed time.Duration) {
	if !confetti.active {
		return
	}
	if now.Sub(confetti.ignition) >= ConfettiDuration {
		confetti.active = false
		confetti.particles = nil
		return
	}

	seconds := elapsed.Seconds()
	for index := range confetti.particles {
		confetti.particles[index].y += confetti.particles[index].fallRate * seconds
		confetti.particles[index].x += confetti.particles[index].drift * seconds
	}
}

// Overlay splices the particles over a rendered view. Particles
// outside the screen are skipped; each particle is a single styled
// cell so the underlying content stays readable.
func (confetti *Confetti) Overlay(view string) string {
	if !confetti.active {
		return view
	}

	viewLines := strings.Split(view, "\n")
	for _, particle := range confetti.particles {
		row := int(particle.y)
		column := int(particle.x)
		if row < 0 || row >= len(viewLines) || column < 0 || column >= confetti.width {
			continue
		}

		line := viewLines[row]
		lineWidth := ansi.StringWidth(line)
		if column >= lineWidth {
			continue
		}

		styled := lipgloss.NewStyle().Foreground(particle.color).Render(particle.glyph)

		var result strings.Builder
		if column > 0 {
			result.WriteString(ansi.Truncate(line, column, ""))
		}
		result.WriteString("\x1b[0m")
		result.WriteString(styled)
		result.WriteString("\x1b[0m")
		if column+1 < lineWidth {
			result.WriteString(ansi.TruncateLeft(line, column+1, ""))
		}
		viewLines[row] = result.String()
	}

	return strings.Join(viewLines, "\n")
}
