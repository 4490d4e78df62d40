package app

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/wheelpicker/internal/config"
	"github.com/depeter/wheelpicker/internal/haptics"
	"github.com/depeter/wheelpicker/internal/ui"
	"github.com/depeter/wheelpicker/internal/wheel"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Screens *ui.ScreenManager
	Picker  *ui.PickerScreen

	Width, Height int

	logger *log.Logger
	haptic *haptics.Async
	dial   *ui.Dial
}

// NewGame builds the picker over the configured items. Haptic impacts run
// on a worker so a slow motor never stalls a frame.
func NewGame(cfg *config.Config, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	wcfg, err := cfg.WheelConfig()
	if err != nil {
		return nil, err
	}

	g := &Game{
		Config:  cfg,
		Screens: ui.NewScreenManager(),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
		logger:  logger,
	}

	var h haptics.Haptic = haptics.Nop{}
	if cfg.Haptics.Enabled {
		h = ui.NewVibrator(cfg.HapticDuration(), cfg.Haptics.Magnitude)
	}
	g.haptic = haptics.NewAsync(h, logger, 4)
	g.dial = ui.StartDial(logger)

	opts := []wheel.Option{wheel.WithHaptic(g.haptic), wheel.WithLogger(logger)}
	if cfg.Picker.DefaultItem != "" {
		opts = append(opts, wheel.WithDefaultItem(cfg.Picker.DefaultItem))
	}
	picker := wheel.New(cfg.Picker.Items, wcfg, opts...)

	g.Picker = ui.NewPickerScreen(picker, cfg, g.dial, logger)
	g.Picker.OnSelect = func(item string, endReached bool) {
		logger.Info("selected", "item", item, "endReached", endReached)
	}
	g.Screens.Push(g.Picker)
	return g, nil
}

// Close releases the haptic worker and the input devices.
func (g *Game) Close() {
	g.Screens.ClearStack()
	g.haptic.Close()
	if err := g.dial.Close(); err != nil {
		g.logger.Debug("dial close", "err", err)
	}
	if n := g.haptic.Dropped(); n > 0 {
		g.logger.Debug("haptic impacts dropped", "count", n)
	}
}

func (g *Game) Update() error {
	// Alt+Enter or the fullscreen keybind toggles fullscreen
	if (inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt)) ||
		ui.KeyJustPressed(g.Config.Keybinds.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if err := g.Screens.Update(); err != nil {
		return err
	}
	ui.UpdateInputState()

	if g.Screens.StackSize() == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	if ui.DebugOverlayVisible() {
		ui.DrawDebugOverlay(screen, g.Picker.DebugLines())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.Width, g.Height = outsideWidth, outsideHeight
	}
	g.Screens.Layout(g.Width, g.Height)
	return g.Width, g.Height
}

// Run opens the window and blocks until the picker is dismissed.
func (g *Game) Run(title string) error {
	defer g.Close()

	ebiten.SetWindowSize(g.Config.UI.Width, g.Config.UI.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(g.Config.UI.Fullscreen)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
