// Command repulsor drives the gesture-activated repulsor glove: it polls
// the accelerometer and button at a fixed rate, feeds the decision core,
// and renders light and sound effects.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gerranmora/iron-man-repulsor-glove/internal/accel"
	"github.com/gerranmora/iron-man-repulsor-glove/internal/audio"
	"github.com/gerranmora/iron-man-repulsor-glove/internal/button"
	"github.com/gerranmora/iron-man-repulsor-glove/internal/effects"
	"github.com/gerranmora/iron-man-repulsor-glove/internal/logic"
	"github.com/gerranmora/iron-man-repulsor-glove/internal/pixels"
	"github.com/gerranmora/iron-man-repulsor-glove/internal/rgbled"
)

func main() {
	tick := flag.Duration("tick", 10*time.Millisecond, "Scheduler tick interval")
	numPixels := flag.Int("pixels", pixels.DefaultNumPixels, "Number of NeoPixels in the repulsor ring")
	ledPin := flag.Int("led-pin", pixels.DefaultGpioPin, "BCM pin number for the NeoPixel ring")
	brightness := flag.Int("brightness", pixels.DefaultBrightness, "Ring brightness (0-255)")
	buttonPin := flag.Int("button-pin", button.DefaultPin, "BCM pin number for the mode button")
	debounce := flag.Duration("debounce", button.DefaultDebounce, "Button debounce duration")
	i2cBus := flag.Int("i2c-bus", accel.DefaultBus, "I2C bus number for the accelerometer")
	i2cAddr := flag.Int("i2c-addr", accel.DefaultAddr, "I2C address of the accelerometer")
	sounds := flag.String("sounds", audio.DefaultSoundsDir, "Directory of WAV sound assets")
	statusLEDs := flag.String("status-leds", "button:red,button:green,button:blue", `Sysfs LED names for the status RGB LED ("off" disables)`)
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "Heartbeat log interval (0 to disable)")
	printAngle := flag.Bool("print-angle", false, "Print one accelerometer reading and exit")

	flag.Parse()

	if err := run(*tick, *numPixels, *ledPin, *brightness, *buttonPin, *debounce,
		*i2cBus, *i2cAddr, *sounds, *statusLEDs, *heartbeat, *printAngle); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(tick time.Duration, numPixels, ledPin, brightness, buttonPin int, debounce time.Duration,
	i2cBus, i2cAddr int, sounds, statusLEDs string, heartbeat time.Duration, printAngle bool) error {

	// Initialize accelerometer
	accelReader, err := accel.NewLIS3DH(i2cBus, uint16(i2cAddr))
	if err != nil {
		return fmt.Errorf("init accelerometer: %w", err)
	}
	defer accelReader.Close()

	// Print angle mode
	if printAngle {
		x, y, z, err := accelReader.Read()
		if err != nil {
			return fmt.Errorf("read accelerometer: %w", err)
		}
		angle := logic.ArmAngle(logic.SensorSample{X: x, Y: y, Z: z})
		fmt.Printf("x=%.2f y=%.2f z=%.2f angle=%.1f\n", x, y, z, angle)
		return nil
	}

	// Initialize button
	btn, err := button.NewRealReader(buttonPin)
	if err != nil {
		return fmt.Errorf("init button: %w", err)
	}
	defer btn.Close()

	// Initialize LED ring; the ring is the prop, so this one is fatal.
	strip, err := pixels.NewWS281xStrip(numPixels, ledPin, brightness)
	if err != nil {
		return fmt.Errorf("init led ring: %w", err)
	}
	defer strip.Close()

	// Initialize audio. The glove works silently if this fails.
	var player audio.Player
	if bp, err := audio.NewBeepPlayer(sounds); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		player = bp
		defer bp.Close()
		log.Printf("sound assets: %s", strings.Join(bp.Names(), ", "))
	}

	// Initialize status LED, also optional.
	var statusLED rgbled.Driver
	if statusLEDs != "off" {
		names := strings.Split(statusLEDs, ",")
		if len(names) != 3 {
			return fmt.Errorf("status-leds: want 3 comma-separated names, got %q", statusLEDs)
		}
		sd, err := rgbled.NewSysfsDriver(rgbled.DefaultSysfsDir, names[0], names[1], names[2])
		if err != nil {
			log.Printf("status led disabled: %v", err)
		} else {
			statusLED = sd
			defer sd.Close()
		}
	}

	log.Printf("started: tick=%v pixels=%d angle-threshold=%.0f blast-threshold=%.1f heartbeat=%v",
		tick, numPixels, logic.AngleThreshold, logic.BlastAccelThreshold, heartbeat)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return runLoop(accelReader, btn, strip, player, statusLED,
		numPixels, debounce, heartbeat, rng, time.Now, ticker.C, sigCh)
}

func runLoop(accelReader accel.Reader, btn button.Reader, strip pixels.Strip,
	player audio.Player, statusLED rgbled.Driver, numPixels int,
	debounce, heartbeat time.Duration, rng effects.Rand,
	now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {

	startTime := now()
	machine := logic.NewMachine(startTime)
	debouncer := button.NewDebouncer(debounce)
	renderer := effects.NewRenderer(numPixels, rng)

	// Mirror the startup color on the status LED and blank the ring.
	setStatusColor(statusLED, machine.CurrentColor())
	if err := strip.Fill(logic.Color{}); err != nil {
		log.Printf("blank led ring: %v", err)
	}
	if err := strip.Show(); err != nil {
		return fmt.Errorf("blank led ring: %w", err)
	}

	pressed := false

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			if player != nil {
				player.Stop()
			}
			if err := strip.Fill(logic.Color{}); err != nil {
				log.Printf("blank on shutdown: %v", err)
			}
			if err := strip.Show(); err != nil {
				log.Printf("blank on shutdown: %v", err)
			}
			return nil

		case <-tick:
			t := now()

			// A button read error means no edge this tick; the last
			// debounced level stands.
			if raw, err := btn.Pressed(); err != nil {
				log.Printf("button read error: %v", err)
			} else {
				pressed = debouncer.Update(raw, t)
			}

			in := logic.Input{Time: t, Pressed: pressed}
			if x, y, z, err := accelReader.Read(); err != nil {
				log.Printf("accelerometer read error: %v", err)
			} else {
				in.HaveSample = true
				in.Sample = logic.SensorSample{X: x, Y: y, Z: z}
			}

			before := machine.State()
			for _, e := range machine.Step(in) {
				applyEffect(e, player, statusLED)
			}
			if after := machine.State(); after != before {
				log.Printf("state: %s -> %s", before, after)
			}

			frame := renderer.Render(machine.Snapshot(), t)
			if !frame.Skip {
				writeFrame(strip, frame)
			}

			if hb := machine.CheckHeartbeat(t, heartbeat); hb != nil {
				log.Printf("heartbeat: state=%s uptime=%v power_ups=%d power_downs=%d blasts=%d color_changes=%d",
					hb.State, hb.Uptime.Round(time.Second),
					hb.Counts.PowerUps, hb.Counts.PowerDowns, hb.Counts.Blasts, hb.Counts.ColorChanges)
			}
		}
	}
}

// applyEffect executes one state-machine command. Collaborator failures
// degrade to a log line; they never feed back into the machine.
func applyEffect(e logic.Effect, player audio.Player, statusLED rgbled.Driver) {
	switch e.Type {
	case logic.EffectPlaySound:
		if player == nil {
			return
		}
		if err := player.Play(int(e.Sound), e.Loop); err != nil {
			log.Printf("play sound %d: %v", e.Sound, err)
		}
	case logic.EffectStopSound:
		if player != nil {
			player.Stop()
		}
	case logic.EffectSetStatusColor:
		setStatusColor(statusLED, e.Color)
	}
}

func setStatusColor(statusLED rgbled.Driver, c logic.Color) {
	if statusLED == nil {
		return
	}
	if err := statusLED.SetColor(c); err != nil {
		log.Printf("status led: %v", err)
	}
}

// writeFrame pushes a rendered frame to the strip. A failed Show skips the
// frame; the next tick renders a fresh one.
func writeFrame(strip pixels.Strip, frame effects.Frame) {
	for i, c := range frame.Pixels {
		if err := strip.SetPixel(i, c); err != nil {
			log.Printf("set pixel %d: %v", i, err)
			return
		}
	}
	if err := strip.Show(); err != nil {
		log.Printf("show frame: %v", err)
	}
}
