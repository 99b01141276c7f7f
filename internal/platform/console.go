package platform

import "fmt"

// ConsolePlatform implements Platform without any graphics dependency:
// tile draws print to stdout, joypad reads come from an injected
// direction (useful for scripted tests), and vblank is an immediate
// no-op tick counter. This is the off-device stand-in the native test
// harness used to validate bytecode without real hardware (§6).
type ConsolePlatform struct {
	NextDirection Direction // direction ReadJoypad returns; defaults to DirNone
	VBlankTicks   int
	Halted        bool
	HaltScore     int
}

// NewConsolePlatform returns a ConsolePlatform with no button pressed.
func NewConsolePlatform() *ConsolePlatform {
	return &ConsolePlatform{}
}

func (c *ConsolePlatform) ReadJoypad() Direction {
	return c.NextDirection
}

func (c *ConsolePlatform) DrawTile(x, y, tile int) {
	if x < 0 || x >= GridWidth || y < 0 || y >= GridHeight {
		return
	}
	fmt.Printf("draw_tile(%d,%d)=%d\n", x, y, tile)
}

func (c *ConsolePlatform) WaitVBlank() {
	c.VBlankTicks++
}

// GameOver prints the score and returns, unlike the real platform's
// infinite wait — the divergence documented in SPEC_FULL.md so the
// "test" program path can terminate normally under this backend.
func (c *ConsolePlatform) GameOver(score int) {
	c.Halted = true
	c.HaltScore = score
	fmt.Printf("GAME OVER score=%d\n", score)
}
