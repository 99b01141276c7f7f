package main

import (
	"flag"
	"fmt"
	"os"

	"mrbz/internal/emulator"
	"mrbz/internal/loader/fixtures"
	"mrbz/internal/platform"
	"mrbz/internal/vm"
)

const (
	Version     = "0.1.0"
	ProjectName = "mrbz"
)

func main() {
	var (
		program     = flag.String("program", "test", "Embedded program to run: test or snake")
		platformSel = flag.String("platform", "stub", "Platform backend: stub or sdl2")
	)
	flag.Parse()

	fmt.Printf("%s v%s\n", ProjectName, Version)
	fmt.Println("A register VM for a tiny mruby-derived bytecode dialect")
	fmt.Println()

	var bytecode []byte
	switch *program {
	case "test":
		bytecode = testProgram()
	case "snake":
		bytecode = snakeProgram()
	default:
		fmt.Printf("Error: unknown program %q (want test or snake)\n", *program)
		os.Exit(1)
	}

	var backend platform.Platform
	switch *platformSel {
	case "stub":
		backend = platform.NewConsolePlatform()
	case "sdl2":
		sdl := platform.NewSDL2Platform()
		if err := sdl.Initialize(ProjectName); err != nil {
			fmt.Printf("Error: failed to start sdl2 platform: %v\n", err)
			os.Exit(1)
		}
		defer sdl.Cleanup()
		backend = sdl
	default:
		fmt.Printf("Error: unknown platform %q (want stub or sdl2)\n", *platformSel)
		os.Exit(1)
	}

	m := emulator.New(bytecode, backend)
	result, err := m.Run()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("result: %s\n", result.String())
	os.Exit(emulator.ExitCode(result, *program == "snake"))
}

// testProgram computes 13+18 via ADD and returns it, the same Int(31)
// sanity check the native test harness ran on every build (§8).
func testProgram() []byte {
	b := fixtures.New()
	b.Emit(vm.OpLOADI, 0, 13)
	b.Emit(vm.OpLOADI, 1, 18)
	b.Emit(vm.OpADD, 0)
	b.Emit(vm.OpRETURN, 0)
	return b.Build()
}

// snakeProgram draws one tile, then loops wait_vbl -> read_joypad until a
// button is pressed, at which point it calls game_over and returns. On
// the sdl2 backend, game_over never returns (§6); on the stub backend it
// returns normally and the loop exits via RETURN.
func snakeProgram() []byte {
	b := fixtures.New()
	drawTileSym := b.Symbol("draw_tile")
	waitSym := b.Symbol("wait_vbl")
	joySym := b.Symbol("read_joypad")
	gameOverSym := b.Symbol("game_over")

	b.Emit(vm.OpLOADI, 7, 10) // x
	b.Emit(vm.OpLOADI, 8, 8)  // y
	b.Emit(vm.OpLOADI_1, 9)   // tile
	b.Emit(vm.OpSSEND, 6, drawTileSym, 3)

	// Loop: wait for vblank, read the joypad, loop back while idle.
	b.Emit(vm.OpSSEND, 2, waitSym, 0)
	b.Emit(vm.OpSSEND, 1, joySym, 0)
	b.Emit(vm.OpMOVE, 4, 1)
	b.Emit(vm.OpLOADI_0, 5)
	b.Emit(vm.OpEQ, 4)
	b.Emit(vm.OpJMPIF, 4)
	b.EmitI16(-19) // back to the SSEND wait_vbl at the top of the loop

	b.Emit(vm.OpSSEND, 0, gameOverSym, 0)
	b.Emit(vm.OpRETURN, 0)
	return b.Build()
}
