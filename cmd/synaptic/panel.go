package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/synaptic/engine"
	"github.com/lixenwraith/synaptic/parameter"
)

// control is one adjustable row of the live tuning panel. Exactly one of
// value, intVal, boolVal is set
type control struct {
	name    string
	value   *float64
	intVal  *int
	boolVal *bool

	min, max, step float64
}

// panel is the bottom-of-screen tuning HUD: one row per parameter, w/s to
// select, a/d to adjust. Edits go through the full apply path so pool
// rebuilds and force-clears behave exactly like preset loads
type panel struct {
	app      *app
	cur      parameter.Set
	controls []control
	selected int
}

func newPanel(a *app) *panel {
	p := &panel{app: a, cur: a.sim.Params()}
	p.controls = []control{
		{name: "nodeCount", intVal: &p.cur.NodeCount, min: 5, max: 25, step: 1},
		{name: "nodeSpeed", value: &p.cur.NodeSpeed, min: 0, max: 2, step: 0.1},
		{name: "activitySpeed", value: &p.cur.ActivitySpeed, min: 0.5, max: 5, step: 0.25},
		{name: "connectionOpacity", value: &p.cur.ConnectionOpacity, min: 0, max: 1, step: 0.05},
		{name: "spaceSize", value: &p.cur.SpaceSize, min: 10, max: 30, step: 1},
		{name: "mouseRadius", value: &p.cur.MouseInfluenceRadius, min: 2, max: 15, step: 0.5},
		{name: "connections", boolVal: &p.cur.ShowAllConnections},
		{name: "particles", boolVal: &p.cur.ShowParticles},
		{name: "ripples", boolVal: &p.cur.ShowRipples},
		{name: "particleCount", value: &p.cur.ParticleCount, min: 0, max: 20, step: 1},
		{name: "particleSpeed", value: &p.cur.ParticleSpeed, min: 0.1, max: 3, step: 0.1},
		{name: "particleSize", value: &p.cur.ParticleSize, min: 0.05, max: 0.5, step: 0.05},
		{name: "rippleIntensity", value: &p.cur.RippleIntensity, min: 0, max: 2, step: 0.1},
		{name: "rippleDuration", value: &p.cur.RippleDuration, min: 0.5, max: 5, step: 0.25},
		{name: "rippleSize", value: &p.cur.RippleSize, min: 0.2, max: 3, step: 0.1},
		{name: "wallRestitution", value: &p.cur.WallRestitution, min: 0.1, max: 1, step: 0.05},
		{name: "wallFriction", value: &p.cur.WallFriction, min: 0.8, max: 1, step: 0.01},
	}
	return p
}

func (p *panel) prev() {
	p.selected--
	if p.selected < 0 {
		p.selected = len(p.controls) - 1
	}
}

func (p *panel) next() {
	p.selected++
	if p.selected >= len(p.controls) {
		p.selected = 0
	}
}

// adjust nudges the selected parameter and applies the whole set
func (p *panel) adjust(sim *engine.Simulation, dir int) {
	p.cur = sim.Params()
	c := &p.controls[p.selected]

	switch {
	case c.boolVal != nil:
		*c.boolVal = !*c.boolVal
	case c.intVal != nil:
		*c.intVal += dir * int(c.step)
		if *c.intVal < int(c.min) {
			*c.intVal = int(c.min)
		}
		if *c.intVal > int(c.max) {
			*c.intVal = int(c.max)
		}
	default:
		*c.value += float64(dir) * c.step
		if *c.value < c.min {
			*c.value = c.min
		}
		if *c.value > c.max {
			*c.value = c.max
		}
	}

	sim.Apply(p.cur)
}

func (p *panel) draw(screen tcell.Screen, w, h int) {
	p.cur = p.app.sim.Params()

	dim := tcell.StyleDefault.Foreground(tcell.NewRGBColor(110, 110, 125))
	sel := tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 230, 120))
	val := tcell.StyleDefault.Foreground(tcell.NewRGBColor(160, 220, 255))

	rows := len(p.controls) + 3
	startY := h - rows
	if startY < 0 {
		return
	}

	// Preset bar: numbered library entries, active name highlighted
	x := 1
	for i, name := range p.presetNames() {
		style := dim
		if name == p.cur.Name {
			style = sel
		}
		writeText(screen, x, startY, fmt.Sprintf("%d:%s", i+1, name), style)
		x += len(name) + 4
	}
	if t := p.app.pipe.Transition; t.Active() {
		writeText(screen, x, startY, fmt.Sprintf("-> %s", t.Target()), val)
	}

	for i, c := range p.controls {
		y := startY + 1 + i
		marker := "  "
		style := dim
		if i == p.selected {
			marker = "> "
			style = sel
		}

		var text string
		switch {
		case c.boolVal != nil:
			text = fmt.Sprintf("%s%-18s %v", marker, c.name, *c.boolVal)
		case c.intVal != nil:
			text = fmt.Sprintf("%s%-18s %d", marker, c.name, *c.intVal)
		default:
			text = fmt.Sprintf("%s%-18s %.2f", marker, c.name, *c.value)
		}
		writeText(screen, 1, y, text, style)
	}

	status := fmt.Sprintf("ease:%s  collisions:%d  particles:%d  ripples:%d",
		p.app.easing,
		p.app.sim.Status.Int("motion.collisions").Load(),
		len(p.app.sim.Particles),
		len(p.app.sim.Ripples))
	if p.app.sounds.Muted() {
		status += "  [muted]"
	}
	writeText(screen, 1, h-2, status, val)
	writeText(screen, 1, h-1,
		"w/s:select  a/d:adjust  1-9:preset  e:ease  p:save  r:reset  m:mute  q:quit", dim)
}

// presetNames caps the bar at the nine number keys
func (p *panel) presetNames() []string {
	names := p.app.presets
	if len(names) > 9 {
		names = names[:9]
	}
	return names
}

func writeText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
