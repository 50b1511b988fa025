// halfblock-demo renders animated scenes on a half-block terminal canvas
//
// Usage:
//
//	halfblock-demo [-config demo.toml] [-backend tcell|ansi] [-scene balls] [-fps 60] [-mute]
//
// Keys: Tab / arrows switch scenes, 1-6 jump to a scene, h toggles the HUD,
// m toggles sound, q or Esc quits
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/halfblock/audio"
	"github.com/lixenwraith/halfblock/config"
	"github.com/lixenwraith/halfblock/engine"
	"github.com/lixenwraith/halfblock/status"
	"github.com/lixenwraith/halfblock/surface"
)

var (
	configFlag  = flag.String("config", "", "TOML config file")
	backendFlag = flag.String("backend", "", "Surface backend: tcell, ansi (overrides config)")
	sceneFlag   = flag.String("scene", "", "Initial scene (overrides config)")
	fpsFlag     = flag.Int("fps", -1, "Frame cap, 0 = uncapped (overrides config)")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
	imageFlag   = flag.String("image", "", "PNG, JPEG or GIF shown by the image scene")
	logFlag     = flag.String("log", "", "Log file (overrides config)")
	dumpFlag    = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

func main() {
	// Panic recovery: reset the terminal before printing so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}

	if *dumpFlag {
		if err := cfg.Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Encode error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	level, _ := cfg.SlogLevel()
	logFile, err := setupLogging(cfg.LogFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, newSurface(cfg.Backend)); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

// loadConfig merges defaults, the config file, and explicit flags
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if *backendFlag != "" {
		cfg.Backend = *backendFlag
	}
	if *sceneFlag != "" {
		cfg.Demo.Scene = *sceneFlag
	}
	if *fpsFlag >= 0 {
		cfg.FPS = *fpsFlag
	}
	if *muteFlag {
		cfg.Mute = true
	}
	if *imageFlag != "" {
		cfg.Demo.Image = *imageFlag
	}
	if *logFlag != "" {
		cfg.LogFile = *logFlag
	}
	return cfg, cfg.Validate()
}

func newSurface(backend string) surface.Surface {
	if backend == config.BackendANSI {
		return surface.NewANSISurface()
	}
	return surface.NewTcellSurface()
}

// run owns the surface lifecycle and blocks until the loop exits
func run(cfg *config.Config, surf surface.Surface) error {
	if err := surf.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer surf.Fini()

	player := audio.NewPlayer(audio.DefaultSampleRate)
	player.SetMuted(cfg.Mute)
	if err := player.Init(); err != nil {
		engine.Logger().Warn("audio unavailable", "error", err)
	} else {
		defer player.Close()
	}

	reg := status.NewRegistry()
	eng := engine.New(surf, engine.WithRegistry(reg), engine.WithMaxFPS(cfg.FPS))

	c := cfg.Canvas
	if err := eng.Construct(c.Width, c.Height, c.X, c.Y, c.Square); err != nil {
		return err
	}

	err := eng.Run(newApp(cfg, player, reg, surf.Colors()))
	if errors.Is(err, engine.ErrStartAborted) {
		return fmt.Errorf("no scene could start: %w", err)
	}
	return err
}

// crash restores the terminal and reports a panic; raw mode needs \r\n
func crash(r any) {
	surface.EmergencyReset(os.Stdout)
	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mHALFBLOCK CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	engine.Logger().Error("crash", "panic", r)

	os.Stderr.Sync()
	os.Exit(1)
}
