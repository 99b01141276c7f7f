package platform

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinel errors for SDL2 setup failures, in the same style as the
// audio backend's error declarations.
var (
	ErrSDL2InitFailed   = errors.New("sdl2 platform: failed to initialize SDL2")
	ErrSDL2WindowFailed = errors.New("sdl2 platform: failed to create window")
)

// tileSize is the pixel footprint of one (x, y) grid cell in the SDL2
// window, the video-side analogue of the audio backend's sample buffer
// sizing.
const tileSize = 16

// palette mirrors the four-shade Game Boy grayscale; tile values are
// mapped onto it modulo 4.
var palette = [4]sdl.Color{
	{R: 0xE0, G: 0xF8, B: 0xD0, A: 0xFF},
	{R: 0x88, G: 0xC0, B: 0x70, A: 0xFF},
	{R: 0x34, G: 0x68, B: 0x56, A: 0xFF},
	{R: 0x08, G: 0x18, B: 0x20, A: 0xFF},
}

// SDL2Platform implements Platform using an SDL2 window and renderer as
// the tile display, and SDL2 keyboard events for read_joypad. The
// teacher's go-sdl2 dependency is only exercised for audio
// (internal/audio/sdl2_audio.go) there; this backend extends the same
// dependency to SDL2's video and event APIs, using the identical
// Init/Quit and error-wrapping idiom.
type SDL2Platform struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	mapping  KeyMapping
	held     map[Key]bool

	initialized bool
}

// NewSDL2Platform constructs an uninitialised SDL2Platform. Call
// Initialize before use and Cleanup when done.
func NewSDL2Platform() *SDL2Platform {
	return &SDL2Platform{
		mapping: DefaultKeyMapping(),
		held:    make(map[Key]bool),
	}
}

// Initialize opens an SDL2 window sized for the 20x18 tile grid.
func (s *SDL2Platform) Initialize(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("%w: %v", ErrSDL2InitFailed, err)
	}

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(GridWidth*tileSize), int32(GridHeight*tileSize),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("%w: %v", ErrSDL2WindowFailed, err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("%w: %v", ErrSDL2WindowFailed, err)
	}

	s.window = window
	s.renderer = renderer
	s.initialized = true
	return nil
}

// Cleanup releases the SDL2 window, renderer, and subsystem, mirroring
// the audio backend's Cleanup shape (stop/close/quit, idempotent).
func (s *SDL2Platform) Cleanup() {
	if !s.initialized {
		return
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	s.initialized = false
}

func (s *SDL2Platform) pumpEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		keyEvent, ok := event.(*sdl.KeyboardEvent)
		if !ok {
			continue
		}
		key := keyFromScancode(keyEvent.Keysym.Scancode)
		if key == KeyUnknown {
			continue
		}
		s.held[key] = keyEvent.State == sdl.PRESSED
	}
}

func keyFromScancode(code sdl.Scancode) Key {
	switch code {
	case sdl.SCANCODE_UP:
		return KeyArrowUp
	case sdl.SCANCODE_DOWN:
		return KeyArrowDown
	case sdl.SCANCODE_LEFT:
		return KeyArrowLeft
	case sdl.SCANCODE_RIGHT:
		return KeyArrowRight
	default:
		return KeyUnknown
	}
}

// ReadJoypad polls pending SDL2 events and resolves the held arrow keys
// to a single prioritised direction.
func (s *SDL2Platform) ReadJoypad() Direction {
	s.pumpEvents()
	return DirectionFor(s.held, s.mapping)
}

// DrawTile paints one grid cell using the tile value (taken modulo the
// 4-shade palette size) as a flat-color rectangle.
func (s *SDL2Platform) DrawTile(x, y, tile int) {
	if x < 0 || x >= GridWidth || y < 0 || y >= GridHeight {
		return
	}
	if !s.initialized {
		return
	}

	shade := tile % len(palette)
	if shade < 0 {
		shade += len(palette)
	}
	color := palette[shade]

	s.renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	s.renderer.FillRect(&sdl.Rect{
		X: int32(x * tileSize),
		Y: int32(y * tileSize),
		W: tileSize,
		H: tileSize,
	})
}

// WaitVBlank presents the current frame and paces to roughly the Game
// Boy's ~59.7 Hz refresh rate.
func (s *SDL2Platform) WaitVBlank() {
	if s.initialized {
		s.renderer.Present()
	}
	sdl.Delay(uint32(1000.0 / 59.7))
}

// GameOver clears the display, prints the score, and blocks forever on
// vertical blank, matching the real-hardware contract of never
// returning (§4.4).
func (s *SDL2Platform) GameOver(score int) {
	if s.initialized {
		s.renderer.SetDrawColor(palette[0].R, palette[0].G, palette[0].B, palette[0].A)
		s.renderer.Clear()
		s.renderer.Present()
	}
	fmt.Printf("GAME OVER score=%d\n", score)
	for {
		s.WaitVBlank()
	}
}
