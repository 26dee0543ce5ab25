// swipetone plays audio feedback for touch gestures: a blip for taps,
// rising and falling glides for swipes, and chimes for sleep and wake.
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/spf13/cobra"

	"github.com/effelle/SentIO/gesture"
	"github.com/effelle/SentIO/source"
)

var version = "dev"

const sampleRate = beep.SampleRate(44100)

var (
	demo         bool
	device       string
	screenWidth  int
	screenHeight int
	sleepTimeout time.Duration
)

func main() {
	cmd := &cobra.Command{
		Use:   "swipetone",
		Short: "Audio feedback for touch gestures",
		Long: `swipetone runs the gesture engine against a touchscreen (or a scripted
demo sequence with --demo) and plays a synthesized tone for every tap,
swipe, sleep, and wake event.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "replay a scripted gesture sequence")
	cmd.Flags().StringVar(&device, "device", "touchscreen", "input device name keyword")
	cmd.Flags().IntVar(&screenWidth, "width", 320, "display width in pixels")
	cmd.Flags().IntVar(&screenHeight, "height", 240, "display height in pixels")
	cmd.Flags().DurationVar(&sleepTimeout, "sleep-timeout", 10*time.Second, "idle time before sleep")

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}

	var src gesture.Source
	if demo {
		src = source.Demo(screenWidth, screenHeight).Loop()
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
		Width:        screenWidth,
		Height:       screenHeight,
		SleepTimeout: sleepTimeout,
		Debounce:     50 * time.Millisecond,
	})

	lastTone := time.Time{}
	cooldown := 150 * time.Millisecond
	play := func(k gesture.Kind, tones ...toneSpec) gesture.Trigger {
		return gesture.TriggerFunc(func() {
			if time.Since(lastTone) < cooldown {
				return
			}
			lastTone = time.Now()
			fmt.Printf("%s\n", k)
			playTones(tones)
		})
	}

	engine.Bind(gesture.Tap, play(gesture.Tap, tone(880, 80)))
	engine.Bind(gesture.SwipeRight, play(gesture.SwipeRight, tone(523, 90), tone(784, 90)))
	engine.Bind(gesture.SwipeLeft, play(gesture.SwipeLeft, tone(784, 90), tone(523, 90)))
	engine.Bind(gesture.Wake, play(gesture.Wake, tone(440, 120), tone(880, 120)))
	engine.Bind(gesture.Sleep, play(gesture.Sleep, tone(880, 120), tone(440, 180)))

	mode := "touchscreen"
	if demo {
		mode = "demo"
	}
	fmt.Printf("swipetone: listening for gestures in %s mode... (ctrl+c to quit)\n", mode)

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	engine.Start(time.Now())
	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nbye!")
			return nil
		case <-ticker.C:
		}
		engine.Tick(time.Now())
	}
}

// toneSpec is one note of a feedback sequence.
type toneSpec struct {
	freq float64
	ms   int
}

func tone(freq float64, ms int) toneSpec {
	return toneSpec{freq: freq, ms: ms}
}

// playTones queues the sequence on the speaker without blocking the tick
// loop.
func playTones(tones []toneSpec) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, sine(t.freq, t.ms))
	}
	speaker.Play(beep.Seq(parts...))
}

// sine synthesizes one note as a bounded streamer.
func sine(freq float64, ms int) beep.Streamer {
	var t int
	wave := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := 0.4 * math.Sin(2*math.Pi*freq*float64(t)/float64(sampleRate))
			samples[i][0] = v
			samples[i][1] = v
			t++
		}
		return len(samples), true
	})
	return beep.Take(sampleRate.N(time.Duration(ms)*time.Millisecond), wave)
}
