// Package platform defines the backend-agnostic interface the host
// bridge drives for input, display, and timing, plus two
// implementations: an SDL2-backed real platform and a console/stub
// platform for off-device testing.
package platform

// Direction is the priority-ordered joypad reading returned by
// read_joypad: UP(1) > DOWN(2) > LEFT(3) > RIGHT(4), none -> 0.
type Direction uint8

const (
	DirNone  Direction = 0
	DirUp    Direction = 1
	DirDown  Direction = 2
	DirLeft  Direction = 3
	DirRight Direction = 4
)

// Grid dimensions for draw_tile/clear_tile bounds checking (§4.4).
const (
	GridWidth  = 20
	GridHeight = 18
)

// EmptyTile is the tile index clear_tile draws.
const EmptyTile = 0

// Platform is the set of host primitives specified only as an interface
// in §1/§6: input polling, tile drawing, frame sync, and the
// game-over halt. The PRNG is deliberately NOT part of this interface —
// per the redesign note it lives in VM state so both platform
// implementations see an identical deterministic sequence.
type Platform interface {
	// ReadJoypad returns the currently pressed direction, or DirNone.
	ReadJoypad() Direction

	// DrawTile draws tile at cell (x, y). Out-of-bounds cells are a
	// documented no-op, not an error.
	DrawTile(x, y, tile int)

	// WaitVBlank blocks until the next vertical-blank tick. This is the
	// VM's only cooperative blocking point besides GameOver.
	WaitVBlank()

	// GameOver clears the display, shows score, and halts. On a real
	// backend this is conventionally non-returning (infinite vblank
	// wait); the console/stub backend returns normally so off-device
	// tests can exercise it without hanging (see SPEC_FULL.md's
	// real-vs-stub platform divergence note). Callers must not assume
	// control returns.
	GameOver(score int)
}

// ClearTile is the shared clear_tile behaviour built on top of DrawTile,
// exactly as the original expresses clear_tile as draw_tile(x, y, EMPTY).
func ClearTile(p Platform, x, y int) {
	p.DrawTile(x, y, EmptyTile)
}
