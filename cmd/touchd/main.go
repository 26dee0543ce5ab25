// touchd reads a touchscreen through evdev, runs the gesture engine at a
// fixed tick rate, forwards calibrated coordinates to a virtual uinput
// pointer, and dispatches gesture events on an in-process event bus.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/charmbracelet/fang"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/effelle/SentIO/backlight"
	"github.com/effelle/SentIO/gesture"
	"github.com/effelle/SentIO/sink"
	"github.com/effelle/SentIO/source"
)

var version = "dev"

var (
	device            string
	width             int
	height            int
	tick              time.Duration
	sleepTimeout      time.Duration
	debounce          time.Duration
	suppressWakeClick bool
	swapXY            bool
	invertX           bool
	invertY           bool
	debugRaw          bool
	verbose           bool
	noPointer         bool
	useBacklight      bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "touchd",
		Short: "Touchscreen gesture daemon",
		Long: `touchd polls a touchscreen via evdev, calibrates the coordinates
(axis swap, inversion, clamping), classifies taps and horizontal swipes,
and manages display sleep/wake on touch inactivity.

Calibrated coordinates are forwarded to a virtual uinput pointer; gesture
events are published on an internal event bus. Run with sudo or make sure
your user can read /dev/input and write /dev/uinput.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&device, "device", "touchscreen", "input device name keyword")
	cmd.Flags().IntVar(&width, "width", 320, "display width in pixels")
	cmd.Flags().IntVar(&height, "height", 240, "display height in pixels")
	cmd.Flags().DurationVar(&tick, "tick", 10*time.Millisecond, "polling interval")
	cmd.Flags().DurationVar(&sleepTimeout, "sleep-timeout", 30*time.Second, "idle time before sleep")
	cmd.Flags().DurationVar(&debounce, "debounce", 50*time.Millisecond, "minimum touch duration")
	cmd.Flags().BoolVar(&suppressWakeClick, "suppress-wake-click", true, "swallow the touch that wakes the display")
	cmd.Flags().BoolVar(&swapXY, "swap-xy", false, "swap the X and Y axes")
	cmd.Flags().BoolVar(&invertX, "invert-x", false, "invert the X axis")
	cmd.Flags().BoolVar(&invertY, "invert-y", false, "invert the Y axis")
	cmd.Flags().BoolVar(&debugRaw, "debug-raw", false, "log every raw sample")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().BoolVar(&noPointer, "no-pointer", false, "log points instead of creating a uinput device")
	cmd.Flags().BoolVar(&useBacklight, "backlight", false, "blank the backlight on sleep")

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose || debugRaw {
		log.SetLevel(logrus.DebugLevel)
	}

	src, err := source.OpenEvdev(device)
	if err != nil {
		return err
	}
	defer src.Close()
	log.WithField("device", src.Device()).Info("touchscreen opened")

	var snk gesture.Sink
	var ptr *sink.Pointer
	if noPointer {
		snk = sink.NewLogger(log)
	} else {
		ptr, err = sink.NewPointer("sentio-pointer", width, height)
		if err != nil {
			return err
		}
		defer ptr.Close()
		snk = ptr
	}

	var bl *backlight.Device
	if useBacklight {
		bl, err = backlight.Open()
		if err != nil {
			log.WithError(err).Warn("backlight unavailable, continuing without it")
		}
	}

	engine := gesture.New(gesture.Config{
		Source:            src,
		Sink:              snk,
		Width:             width,
		Height:            height,
		SleepTimeout:      sleepTimeout,
		SuppressWakeClick: suppressWakeClick,
		SwapXY:            swapXY,
		InvertX:           invertX,
		InvertY:           invertY,
		Debounce:          debounce,
		DebugRaw:          debugRaw,
		Log:               log,
	})

	bus := EventBus.New()
	for _, k := range gesture.Kinds() {
		topic := k.String()
		engine.Bind(k, gesture.TriggerFunc(func() { bus.Publish(topic) }))
	}

	for _, k := range gesture.Kinds() {
		bus.Subscribe(k.String(), func() {
			log.WithField("event", k.String()).Info("gesture")
		})
	}
	if ptr != nil {
		bus.Subscribe(gesture.Tap.String(), func() {
			if err := ptr.LeftClick(); err != nil {
				log.WithError(err).Warn("click failed")
			}
		})
	}
	if bl != nil {
		bus.Subscribe(gesture.Sleep.String(), func() {
			if err := bl.Off(); err != nil {
				log.WithError(err).Warn("backlight off failed")
			}
		})
		bus.Subscribe(gesture.Wake.String(), func() {
			if err := bl.Restore(); err != nil {
				log.WithError(err).Warn("backlight restore failed")
			}
		})
	}

	log.WithFields(logrus.Fields{
		"tick":          tick,
		"sleep_timeout": sleepTimeout,
	}).Info("touchd running")

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	engine.Start(time.Now())
	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return nil
		case <-ticker.C:
		}
		engine.Tick(time.Now())
	}
}
