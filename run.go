package multitouch

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// ClearColor, when its alpha is non-zero, replaces Scene.ClearColor.
	ClearColor Color `yaml:"clearColor"`

	// MouseAsTouch routes the left mouse button as touch MouseTouchID.
	// Nil means enabled.
	MouseAsTouch *bool `yaml:"mouseAsTouch"`

	// Debug turns on Scene.SetDebugMode.
	Debug bool `yaml:"debug"`

	// Script, when non-empty, is a touch script (see LoadTouchScript)
	// played back from the first frame.
	Script string `yaml:"script"`
}

const (
	defaultWidth  = 640
	defaultHeight = 480
)

// LoadRunConfig parses a YAML (or JSON) run configuration and fills in
// defaults for missing fields.
func LoadRunConfig(data []byte) (RunConfig, error) {
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse run config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *RunConfig) applyDefaults() {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.MouseAsTouch == nil {
		on := true
		c.MouseAsTouch = &on
	}
}

// apply configures scene from c: touch script, input reader, clear color
// and debug mode. c must have defaults applied.
func (c *RunConfig) apply(scene *Scene) error {
	if c.Script != "" {
		script, err := LoadTouchScript([]byte(c.Script))
		if err != nil {
			return err
		}
		scene.SetTouchScript(script)
	}
	scene.Input().SetReader(NewEbitenReader(*c.MouseAsTouch))
	if c.ClearColor.A > 0 {
		scene.ClearColor = c.ClearColor
	}
	if c.Debug {
		scene.SetDebugMode(true)
	}
	return nil
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene         *Scene
	width, height int
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives scene until the window is closed. The
// scene's router is destroyed on return so every live gesture receives
// its OnEnd.
func Run(scene *Scene, cfg RunConfig) error {
	cfg.applyDefaults()
	if err := cfg.apply(scene); err != nil {
		return err
	}
	defer scene.Router().Destroy()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{scene: scene, width: cfg.Width, height: cfg.Height})
}
