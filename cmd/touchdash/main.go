// touchdash is a live terminal dashboard for the gesture engine: it shows
// the classifier state, the calibrated touch position, the recent touch
// trail, and the event history, either from a real evdev touchscreen or
// from a scripted demo sequence.
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/effelle/SentIO/gesture"
	"github.com/effelle/SentIO/source"
)

var version = "dev"

// ANSI escape codes.
const (
	rst     = "\033[0m"
	bold    = "\033[1m"
	dim     = "\033[2m"
	grn     = "\033[32m"
	yel     = "\033[33m"
	cyn     = "\033[36m"
	bred    = "\033[91m"
	bwht    = "\033[97m"
	hideCur = "\033[?25l"
	showCur = "\033[?25h"
	altOn   = "\033[?1049h"
	altOff  = "\033[?1049l"
	clear   = "\033[2J\033[H"

	width  = 64
	blocks = " ▁▂▃▄▅▆▇█"
)

var (
	demo          bool
	device        string
	displayWidth  int
	displayHeight int
	sleepTimeout  time.Duration
	debounce      time.Duration
	swapXY        bool
	invertX       bool
	invertY       bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "touchdash",
		Short: "Live gesture engine dashboard",
		Long: `touchdash runs the gesture engine against a touchscreen (or a scripted
demo sequence with --demo) and renders a live terminal view of the
classifier state, calibrated position, touch trail, and gesture events.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "replay a scripted gesture sequence")
	cmd.Flags().StringVar(&device, "device", "touchscreen", "input device name keyword")
	cmd.Flags().IntVar(&displayWidth, "width", 320, "display width in pixels")
	cmd.Flags().IntVar(&displayHeight, "height", 240, "display height in pixels")
	cmd.Flags().DurationVar(&sleepTimeout, "sleep-timeout", 5*time.Second, "idle time before sleep")
	cmd.Flags().DurationVar(&debounce, "debounce", 50*time.Millisecond, "minimum touch duration")
	cmd.Flags().BoolVar(&swapXY, "swap-xy", false, "swap the X and Y axes")
	cmd.Flags().BoolVar(&invertX, "invert-x", false, "invert the X axis")
	cmd.Flags().BoolVar(&invertY, "invert-y", false, "invert the Y axis")

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

// event is one fired trigger, kept for the history pane.
type event struct {
	time time.Time
	kind gesture.Kind
}

func run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var src gesture.Source
	if demo {
		src = source.Demo(displayWidth, displayHeight).Loop()
	} else {
		ev, err := source.OpenEvdev(device)
		if err != nil {
			return fmt.Errorf("opening touchscreen (try --demo): %w", err)
		}
		defer ev.Close()
		src = ev
	}

	engine := gesture.New(gesture.Config{
		Source:       src,
		Width:        displayWidth,
		Height:       displayHeight,
		SleepTimeout: sleepTimeout,
		Debounce:     debounce,
		SwapXY:       swapXY,
		InvertX:      invertX,
		InvertY:      invertY,
	})

	var events []event
	counts := make(map[gesture.Kind]int)
	for _, k := range gesture.Kinds() {
		engine.Bind(k, gesture.TriggerFunc(func() {
			counts[k]++
			events = append(events, event{time: time.Now(), kind: k})
			if len(events) > 100 {
				events = events[len(events)-100:]
			}
		}))
	}

	fmt.Print(altOn + hideCur)
	defer fmt.Print(showCur + altOff + "\n")

	tStart := time.Now()
	lastDraw := time.Time{}
	ticks := 0

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	engine.Start(time.Now())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		engine.Tick(time.Now())
		ticks++

		if now := time.Now(); now.Sub(lastDraw) >= 100*time.Millisecond {
			fmt.Print(clear + render(engine, counts, events, tStart, ticks))
			lastDraw = now
		}
	}
}

func render(e *gesture.Engine, counts map[gesture.Kind]int, events []event, tStart time.Time, ticks int) string {
	var b strings.Builder
	gw := width - 4

	line := func(content string) {
		vl := visLen(content)
		pad := max(0, width-vl)
		fmt.Fprintf(&b, "%s│%s%s%s│%s\n", dim, rst, content, strings.Repeat(" ", pad), rst)
	}
	sep := func(label string) {
		if label != "" {
			rest := width - visLen(label) - 1
			fmt.Fprintf(&b, "%s├─%s%s┤%s\n", dim, label, strings.Repeat("─", rest), rst)
		} else {
			fmt.Fprintf(&b, "%s├%s┤%s\n", dim, strings.Repeat("─", width), rst)
		}
	}

	title := " TOUCH GESTURES "
	topBar := strings.Repeat("─", width-len(title)-1)
	fmt.Fprintf(&b, "%s┌─%s%s%s%s%s┐%s\n", dim, rst, bwht, title, rst, dim+topBar, rst)

	elapsed := time.Since(tStart).Seconds()
	line(fmt.Sprintf(" %s%7.1fs%s  %10d ticks  Ev:%d", dim, elapsed, rst, ticks, len(events)))

	// Classifier state
	sep(" State ")
	stateCol := dim
	switch e.State() {
	case gesture.StateStart:
		stateCol = yel
	case gesture.StateDragging:
		stateCol = grn
	}
	power := grn + "awake" + rst
	if e.Sleeping() {
		power = bred + "asleep" + rst
	}
	line(fmt.Sprintf("  %s%s%-9s%s  power: %s", stateCol, bold, e.State(), rst, power))

	// Current point
	sep(" Position ")
	pw := width - 16
	if pts := e.Touches(); len(pts) > 0 {
		p := pts[0]
		line(fmt.Sprintf(" %sX%s %s%s%s %4d", dim, rst, cyn, gauge(float64(p.X), 0, float64(displayWidth), pw), rst, p.X))
		line(fmt.Sprintf(" %sY%s %s%s%s %4d", dim, rst, cyn, gauge(float64(p.Y), 0, float64(displayHeight), pw), rst, p.Y))
	} else {
		line(fmt.Sprintf("  %sno contact%s", dim, rst))
		line("")
	}

	// Trail
	sep(" Trail X / Y ")
	trail := e.Trail().Slice()
	if len(trail) > 0 {
		xs := make([]float64, len(trail))
		ys := make([]float64, len(trail))
		for i, p := range trail {
			xs[i] = float64(p.X)
			ys[i] = float64(p.Y)
		}
		line(fmt.Sprintf("  %s%s%s", grn, sparkline(xs, gw-2, float64(displayWidth)), rst))
		line(fmt.Sprintf("  %s%s%s", cyn, sparkline(ys, gw-2, float64(displayHeight)), rst))
	} else {
		line(fmt.Sprintf("  %sempty%s", dim, rst))
		line("")
	}

	// Counters
	sep(" Gestures ")
	line(fmt.Sprintf("  tap:%-4d  left:%-4d  right:%-4d  wake:%-4d  sleep:%-4d",
		counts[gesture.Tap], counts[gesture.SwipeLeft], counts[gesture.SwipeRight],
		counts[gesture.Wake], counts[gesture.Sleep]))

	// Events
	sep(" Events ")
	start := max(0, len(events)-5)
	for i := len(events) - 1; i >= start; i-- {
		ev := events[i]
		line(fmt.Sprintf(" %s%s%s %s%s%s",
			dim, ev.time.Format("15:04:05.000"), rst, kindColor(ev.kind), ev.kind, rst))
	}
	for range max(0, 5-(len(events)-start)) {
		line("")
	}

	sep("")
	line(fmt.Sprintf(" %sctrl+c to quit%s", dim, rst))
	fmt.Fprintf(&b, "%s└%s┘%s\n", dim, strings.Repeat("─", width), rst)

	return b.String()
}

func sparkline(data []float64, width int, ceil float64) string {
	if len(data) == 0 {
		return strings.Repeat(" ", width)
	}
	d := data
	if len(d) < width {
		pad := make([]float64, width-len(d))
		d = append(pad, d...)
	} else if len(d) > width {
		d = d[len(d)-width:]
	}
	if ceil <= 0 {
		ceil = 1
	}
	blk := []rune(blocks)
	var b strings.Builder
	for _, v := range d {
		frac := math.Min(1, math.Abs(v)/ceil)
		idx := min(8, int(frac*8))
		b.WriteRune(blk[idx])
	}
	return b.String()
}

func gauge(value, vmin, vmax float64, width int) string {
	rng := vmax - vmin
	if rng == 0 {
		rng = 1
	}
	t := math.Max(0, math.Min(1, (value-vmin)/rng))
	pos := int(t * float64(width-1))
	bar := make([]rune, width)
	for i := range bar {
		bar[i] = '─'
	}
	bar[max(0, min(width-1, pos))] = '●'
	return string(bar)
}

func visLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		if r == '\033' {
			inEsc = true
			continue
		}
		if inEsc {
			if r == 'm' {
				inEsc = false
			}
			continue
		}
		n++
	}
	return n
}

func kindColor(k gesture.Kind) string {
	switch k {
	case gesture.Tap:
		return bwht
	case gesture.SwipeLeft, gesture.SwipeRight:
		return grn
	case gesture.Wake:
		return yel
	case gesture.Sleep:
		return bred
	}
	return dim
}
