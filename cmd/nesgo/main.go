// Command nesgo is the playable front end: it loads an iNES ROM,
// drives the console.System one frame per ebiten Update, and presents
// the PPU's framebuffer and the host keyboard as an ebiten.Game.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nesdev-go/nesgo/cartridge"
	"github.com/nesdev-go/nesgo/console"
)

var romPath = flag.String("rom", "", "path to an iNES ROM to run")

const (
	screenWidth  = 256
	screenHeight = 240
)

// keymap pairs each ebiten key with the button bit it drives, in the
// same A/B/Select/Start/Up/Down/Left/Right order the serial port
// reads back.
var keymap = []struct {
	key    ebiten.Key
	button console.Button
}{
	{ebiten.KeyZ, console.ButtonA},
	{ebiten.KeyX, console.ButtonB},
	{ebiten.KeyShiftRight, console.ButtonSelect},
	{ebiten.KeyEnter, console.ButtonStart},
	{ebiten.KeyUp, console.ButtonUp},
	{ebiten.KeyDown, console.ButtonDown},
	{ebiten.KeyLeft, console.ButtonLeft},
	{ebiten.KeyRight, console.ButtonRight},
}

// game adapts a console.System to ebiten.Game. It owns no emulation
// state of its own: System stays headless and testable, game only
// polls the keyboard and blits the framebuffer.
type game struct {
	sys *console.System
	img *image.RGBA
}

func newGame(sys *console.System) *game {
	return &game{
		sys: sys,
		img: image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight)),
	}
}

func (g *game) Update() error {
	var buttons console.Button
	for _, k := range keymap {
		if ebiten.IsKeyPressed(k.key) {
			buttons |= k.button
		}
	}
	g.sys.SetControllerState(0, uint8(buttons))
	g.sys.StepFrame()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.sys.Framebuffer()
	for i, argb := range fb {
		c := color.RGBA{
			R: uint8(argb >> 16),
			G: uint8(argb >> 8),
			B: uint8(argb),
			A: uint8(argb >> 24),
		}
		g.img.SetRGBA(i%screenWidth, i/screenWidth, c)
	}
	screen.WritePixels(g.img.Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()
	if *romPath == "" {
		log.Fatal("nesgo: -rom is required")
	}

	cart, err := cartridge.LoadFile(*romPath)
	if err != nil {
		log.Fatalf("nesgo: %v", err)
	}

	sys := console.New(cart)
	sys.Reset()

	ebiten.SetWindowSize(screenWidth*3, screenHeight*3)
	ebiten.SetWindowTitle("nesgo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newGame(sys)); err != nil {
		log.Fatal(err)
	}
}
