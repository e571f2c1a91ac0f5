//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"log"
	"time"

	"pixel-garden/internal/config"
	"pixel-garden/internal/core"
	"pixel-garden/internal/garden"
	"pixel-garden/internal/render"
	"pixel-garden/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a garden animator to the ebiten.Game interface. The window's
// layout box is the drawing surface: Layout doubles as the resize signal.
type Game struct {
	anim    *garden.Animator
	surface *render.PixelSurface
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	toast   *core.Toast

	scale   int
	seed    int64
	showHUD bool
}

// New constructs a Game with a w*h logical window at the given scale.
func New(t garden.Tuning, w, h, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	surface := render.NewPixelSurface(w, h)
	anim := garden.NewAnimator(surface, t, seed)
	toast := core.NewToast(core.DefaultToastDuration)
	return &Game{
		anim:    anim,
		surface: surface,
		painter: render.NewGridPainter(w, h),
		hud:     ui.NewHUD(anim, toast),
		overlay: ui.NewOverlay(anim, scale),
		toast:   toast,
		scale:   scale,
		seed:    seed,
	}
}

// Reset reseeds the garden.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.anim.Reseed(seed)
	g.toast.Show(fmt.Sprintf("seed %d", seed))
}

// Update handles input and advances the animator by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.anim.SetPaused(!g.anim.Paused())
		if g.anim.Paused() {
			g.toast.Show("paused")
		} else {
			g.toast.Show("running")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.anim.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.overlay.Update()
	if g.showHUD {
		g.hud.Update()
	}
	g.toast.Update(time.Second / time.Duration(ebiten.TPS()))
	g.anim.Tick()
	return nil
}

// Draw paints the garden, then overlays and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.anim.Paint()
	g.painter.Blit(screen, g.surface, g.scale)
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen)
	}
}

// Layout resizes the surface to the outside size divided by the scale and
// rebuilds the grid when it changed.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth/g.scale, outsideHeight/g.scale
	if sw, sh := g.surface.Size(); sw != w || sh != h {
		g.surface.Resize(w, h)
		g.anim.Resize()
	}
	return w * g.scale, h * g.scale
}

// Run opens a resizable window and blocks until it is closed.
func Run(cfg *config.Config) error {
	t, err := cfg.Resolve()
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := New(t, cfg.Width, cfg.Height, cfg.Scale, seed)
	log.Printf("garden: window %s seed %d", t.Name, seed)

	ebiten.SetWindowTitle("pixel garden - " + t.Name)
	ebiten.SetWindowSize(cfg.Width*g.scale, cfg.Height*g.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FrameRate())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
