package main

import (
	"math"
	"sort"

	"github.com/aquilax/go-perlin"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/synaptic/core"
	"github.com/lixenwraith/synaptic/engine"
	"github.com/lixenwraith/synaptic/render"
	"github.com/lixenwraith/synaptic/vmath"
)

const (
	nodeWorldRadius = 0.8
	rippleSegments  = 48
	minDepth        = 0.5
)

type cell struct {
	r  rune
	fg core.RGB
	bg core.RGB
}

// view rasterizes a render.Frame into a cell buffer and flushes it to the
// tcell screen. All projection math lives here; the simulation only ever
// sees world coordinates
type view struct {
	noise *perlin.Perlin
	cells []cell
	w, h  int
	t     float64
}

func newView(seed int64) *view {
	return &view{
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// project maps a world point to fractional screen coordinates and depth.
// Points at or behind the camera plane are rejected
func (v *view) project(p vmath.Vec3F) (sx, sy, depth float64, ok bool) {
	depth = cameraDistance - p.Z
	if depth < minDepth {
		return 0, 0, 0, false
	}

	tanHalf := math.Tan(cameraFOV * math.Pi / 360)
	aspect := worldAspect(v.w, v.h)

	ndcX := p.X / (depth * tanHalf * aspect)
	ndcY := p.Y / (depth * tanHalf)

	sx = (ndcX + 1) / 2 * float64(v.w)
	sy = (1 - ndcY) / 2 * float64(v.h)
	return sx, sy, depth, true
}

func (v *view) draw(screen tcell.Screen, f *render.Frame, w, h int) {
	if w != v.w || h != v.h {
		v.w, v.h = w, h
		v.cells = make([]cell, w*h)
	}
	v.t += engine.NominalDT

	v.drawNebula(f.Background)
	v.drawBox(f)
	v.drawConnections(f)
	v.drawRipples(f)
	v.drawParticles(f)
	v.drawNodes(f)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := v.cells[y*w+x]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.fg.R), int32(c.fg.G), int32(c.fg.B))).
				Background(tcell.NewRGBColor(int32(c.bg.R), int32(c.bg.G), int32(c.bg.B)))
			screen.SetContent(x, y, c.r, nil, style)
		}
	}
}

// drawNebula fills the buffer with the slowly drifting noise background
func (v *view) drawNebula(base core.RGB) {
	for y := 0; y < v.h; y++ {
		for x := 0; x < v.w; x++ {
			n := v.noise.Noise3D(float64(x)*0.04, float64(y)*0.08, v.t*0.05)
			bright := 0.6 + (n+1)/2*0.5
			v.cells[y*v.w+x] = cell{r: ' ', bg: base.Scale(bright)}
		}
	}
}

// drawBox traces the 12 collision volume edges as a faint wireframe
func (v *view) drawBox(f *render.Frame) {
	hx, hy, hz := f.Box.HalfX, f.Box.HalfY, f.Box.HalfZ
	corners := [8]vmath.Vec3F{
		{X: -hx, Y: -hy, Z: -hz}, {X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz}, {X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: hz}, {X: hx, Y: -hy, Z: hz},
		{X: hx, Y: hy, Z: hz}, {X: -hx, Y: hy, Z: hz},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}

	dim := f.Background.Lerp(core.RGBWhite, 0.18)
	for _, e := range edges {
		v.drawLine(corners[e[0]], corners[e[1]], '·', dim)
	}
}

func (v *view) drawConnections(f *render.Frame) {
	for _, c := range f.Connections {
		fg := f.Background.Lerp(c.Color, vmath.Clamp01(c.Opacity))
		v.drawLine(c.From, c.To, '·', fg)
	}
}

func (v *view) drawParticles(f *render.Frame) {
	for _, p := range f.Particles {
		sx, sy, _, ok := v.project(p.Position)
		if !ok {
			continue
		}
		fg := f.Background.Lerp(p.Color, vmath.Clamp01(p.Opacity))
		v.plot(int(sx), int(sy), '•', fg)
	}
}

// drawRipples traces each expanding ring in its wall plane
func (v *view) drawRipples(f *render.Frame) {
	for _, r := range f.Ripples {
		u, t := planeTangents(r.Normal)
		fg := f.Background.Lerp(r.Color, vmath.Clamp01(r.Opacity))

		for i := 0; i < rippleSegments; i++ {
			a := float64(i) / rippleSegments * 2 * math.Pi
			p := vmath.V3FAdd(r.Position,
				vmath.V3FAdd(
					vmath.V3FScale(u, math.Cos(a)*r.Radius),
					vmath.V3FScale(t, math.Sin(a)*r.Radius)))
			sx, sy, _, ok := v.project(p)
			if !ok {
				continue
			}
			v.plot(int(sx), int(sy), '∘', fg)
		}
	}
}

// planeTangents picks two unit vectors spanning the plane perpendicular to
// an axis-aligned wall normal
func planeTangents(n vmath.Vec3F) (vmath.Vec3F, vmath.Vec3F) {
	switch {
	case n.X != 0:
		return vmath.Vec3F{Y: 1}, vmath.Vec3F{Z: 1}
	case n.Y != 0:
		return vmath.Vec3F{X: 1}, vmath.Vec3F{Z: 1}
	default:
		return vmath.Vec3F{X: 1}, vmath.Vec3F{Y: 1}
	}
}

type projectedNode struct {
	idx    int
	sx, sy float64
	radius float64
	depth  float64
}

// drawNodes paints the spheres far to near so close nodes occlude distant
// ones
func (v *view) drawNodes(f *render.Frame) {
	projs := make([]projectedNode, 0, len(f.Nodes))
	for i, n := range f.Nodes {
		sx, sy, depth, ok := v.project(n.Position)
		if !ok {
			continue
		}
		tanHalf := math.Tan(cameraFOV * math.Pi / 360)
		radius := nodeWorldRadius * n.Scale / (depth * tanHalf) * float64(v.h) / 2
		projs = append(projs, projectedNode{idx: i, sx: sx, sy: sy, radius: radius, depth: depth})
	}

	sort.Slice(projs, func(i, j int) bool { return projs[i].depth > projs[j].depth })

	for _, pr := range projs {
		v.drawSphere(&f.Nodes[pr.idx], pr)
	}
}

func (v *view) drawSphere(n *render.NodeView, pr projectedNode) {
	ry := pr.radius
	rx := ry * cellAspect
	if ry < 0.3 {
		v.plot(int(pr.sx), int(pr.sy), '●', n.Color)
		return
	}

	minX := int(pr.sx - rx - 1)
	maxX := int(pr.sx + rx + 1)
	minY := int(pr.sy - ry - 1)
	maxY := int(pr.sy + ry + 1)

	for sy := minY; sy <= maxY; sy++ {
		if sy < 0 || sy >= v.h {
			continue
		}
		for sx := minX; sx <= maxX; sx++ {
			if sx < 0 || sx >= v.w {
				continue
			}
			nx := (float64(sx) + 0.5 - pr.sx) / rx
			ny := (float64(sy) + 0.5 - pr.sy) / ry
			distSq := nx*nx + ny*ny
			if distSq > 1 {
				continue
			}

			// Bright center falling to the rim, activity already baked
			// into the render color
			shade := 1 - math.Sqrt(distSq)*0.6
			c := v.cells[sy*v.w+sx]
			c.r = ' '
			c.bg = n.Color.Scale(shade)
			v.cells[sy*v.w+sx] = c
		}
	}
}

// drawLine samples a world segment densely enough that each crossed cell
// gets plotted
func (v *view) drawLine(a, b vmath.Vec3F, r rune, fg core.RGB) {
	ax, ay, _, okA := v.project(a)
	bx, by, _, okB := v.project(b)
	if !okA || !okB {
		return
	}

	steps := int(math.Max(math.Abs(bx-ax), math.Abs(by-ay))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		v.plot(int(ax+(bx-ax)*t), int(ay+(by-ay)*t), r, fg)
	}
}

// plot writes a foreground rune, keeping the cell background
func (v *view) plot(x, y int, r rune, fg core.RGB) {
	if x < 0 || x >= v.w || y < 0 || y >= v.h {
		return
	}
	c := v.cells[y*v.w+x]
	c.r = r
	c.fg = fg
	v.cells[y*v.w+x] = c
}
