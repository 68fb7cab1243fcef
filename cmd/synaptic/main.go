// Command synaptic renders the animated network in a terminal: bouncing
// nodes, a full connection mesh, traveling particles and wall ripples, with
// a live control panel and preset crossfades backed by a sqlite library.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/synaptic/audio"
	"github.com/lixenwraith/synaptic/engine"
	"github.com/lixenwraith/synaptic/parameter"
	"github.com/lixenwraith/synaptic/render"
	"github.com/lixenwraith/synaptic/store"
	"github.com/lixenwraith/synaptic/system"
	"github.com/lixenwraith/synaptic/vmath"
)

const (
	cameraFOV      = 60.0
	cameraDistance = 30.0

	// cellAspect compensates terminal cells being taller than wide
	cellAspect = 2.0

	transitionTime = 1500 * time.Millisecond
)

type app struct {
	screen tcell.Screen
	sim    *engine.Simulation
	pipe   *system.Pipeline
	cam    *engine.Camera
	view   *view
	panel  *panel
	sounds *audio.Manager

	store   store.Store
	presets []string

	frame  render.Frame
	easing vmath.EaseKind
	events chan tcell.Event
	cancel context.CancelFunc
}

func main() {
	dbPath := flag.String("db", "synaptic.db", "preset database path")
	presetName := flag.String("preset", "", "preset to start with")
	fps := flag.Int("fps", 60, "target frame rate")
	mute := flag.Bool("mute", false, "start with impact sounds muted")
	memStore := flag.Bool("mem", false, "keep presets in memory only")
	flag.Parse()

	if err := run(*dbPath, *presetName, *fps, *mute, *memStore); err != nil {
		fmt.Fprintf(os.Stderr, "synaptic: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath, presetName string, fps int, mute, memStore bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var st store.Store
	if memStore {
		st = store.NewMemoryStore()
	} else {
		st = store.NewSQLiteStore(dbPath)
	}
	if err := st.Init(ctx); err != nil {
		return fmt.Errorf("open preset store: %w", err)
	}
	defer st.Close()
	if err := store.EnsureBuiltIn(ctx, st); err != nil {
		return fmt.Errorf("seed presets: %w", err)
	}

	start := parameter.Default()
	if presetName != "" {
		p, ok, err := st.Get(ctx, presetName)
		if err != nil {
			return fmt.Errorf("load preset %q: %w", presetName, err)
		}
		if !ok {
			return fmt.Errorf("load preset %q: %w", presetName, store.ErrNotFound)
		}
		start = p
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Restore the terminal on any exit path, panic included
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			panic(r)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	w, h := screen.Size()
	cam := engine.NewCamera(cameraFOV, worldAspect(w, h), cameraDistance)
	sim := engine.NewSimulation(engine.Config{
		Params:    start,
		Bounds:    cam,
		Influence: cam,
	})
	pipe := system.Install(sim)

	sounds := audio.NewManager()
	if err := sounds.Initialize(); err == nil {
		sounds.SetMuted(mute)
	}
	defer sounds.Cleanup()

	a := &app{
		screen: screen,
		sim:    sim,
		pipe:   pipe,
		cam:    cam,
		view:   newView(sim.Rng().Int63()),
		sounds: sounds,
		store:  st,
		easing: vmath.EaseInOut,
		events: make(chan tcell.Event, 64),
		cancel: cancel,
	}
	a.panel = newPanel(a)
	a.refreshPresets(ctx)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case a.events <- ev:
			default:
			}
		}
	}()

	runner := &engine.Runner{
		Sim:       sim,
		FrameHook: func() { a.frameHook(ctx) },
	}
	if err := runner.Run(ctx, fps); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// frameHook runs after every simulation step: drain input, feed impact
// sounds, snapshot and draw
func (a *app) frameHook(ctx context.Context) {
	a.drainInput(ctx)

	for _, imp := range a.pipe.Ripples.Impacts {
		a.sounds.PlayImpact(imp.Speed)
	}

	render.Snapshot(a.sim, &a.frame)

	w, h := a.screen.Size()
	a.view.draw(a.screen, &a.frame, w, h)
	a.panel.draw(a.screen, w, h)
	a.screen.Show()
}

func (a *app) drainInput(ctx context.Context) {
	for {
		select {
		case ev := <-a.events:
			a.handleEvent(ctx, ev)
		default:
			return
		}
	}
}

func (a *app) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.cam.SetAspect(worldAspect(w, h))
		a.screen.Sync()

	case *tcell.EventMouse:
		x, y := ev.Position()
		w, h := a.screen.Size()
		if w > 0 && h > 0 {
			ndcX := float64(2*x)/float64(w) - 1
			ndcY := 1 - float64(2*y)/float64(h)
			a.cam.SetPointer(ndcX, ndcY)
		}

	case *tcell.EventKey:
		a.handleKey(ctx, ev)
	}
}

func (a *app) handleKey(ctx context.Context, ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		a.cancel()
	case ev.Key() == tcell.KeyUp:
		a.panel.prev()
	case ev.Key() == tcell.KeyDown:
		a.panel.next()
	case ev.Key() == tcell.KeyLeft:
		a.panel.adjust(a.sim, -1)
	case ev.Key() == tcell.KeyRight:
		a.panel.adjust(a.sim, +1)
	case ev.Key() != tcell.KeyRune:

	case ev.Rune() == 'q':
		a.cancel()
	case ev.Rune() == 'w' || ev.Rune() == 'W':
		a.panel.prev()
	case ev.Rune() == 's' || ev.Rune() == 'S':
		a.panel.next()
	case ev.Rune() == 'a' || ev.Rune() == 'A':
		a.panel.adjust(a.sim, -1)
	case ev.Rune() == 'd' || ev.Rune() == 'D':
		a.panel.adjust(a.sim, +1)
	case ev.Rune() == 'e':
		a.easing = vmath.NextEaseKind(a.easing)
	case ev.Rune() == 'm':
		a.sounds.SetMuted(!a.sounds.Muted())
	case ev.Rune() == 'p':
		a.savePreset(ctx)
	case ev.Rune() == 'r':
		a.pipe.Transition.Begin(a.sim, parameter.Default(), transitionTime, a.easing)
	case ev.Rune() >= '1' && ev.Rune() <= '9':
		a.selectPreset(ctx, int(ev.Rune()-'1'))
	}
}

// selectPreset starts a crossfade to the numbered library entry. Requests
// during an active crossfade are dropped by the transition system
func (a *app) selectPreset(ctx context.Context, idx int) {
	if idx >= len(a.presets) {
		return
	}
	p, ok, err := a.store.Get(ctx, a.presets[idx])
	if err != nil || !ok {
		return
	}
	a.pipe.Transition.Begin(a.sim, p, transitionTime, a.easing)
}

// savePreset stores the live parameter set under its current name
func (a *app) savePreset(ctx context.Context) {
	if err := a.store.Save(ctx, a.sim.Params()); err != nil {
		return
	}
	a.refreshPresets(ctx)
}

func (a *app) refreshPresets(ctx context.Context) {
	names, err := a.store.List(ctx)
	if err != nil {
		return
	}
	sort.Strings(names)
	a.presets = names
}

// worldAspect converts terminal cell dimensions to the world aspect ratio
func worldAspect(w, h int) float64 {
	if h == 0 {
		return 1
	}
	return float64(w) / (cellAspect * float64(h))
}
