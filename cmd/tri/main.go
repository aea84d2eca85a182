// Command tri opens a window and draws one triangle until the window
// closes or escape is pressed.
package main

import (
	"fmt"
	"os"
	"runtime"

	"dasa.cc/tri"
	"dasa.cc/tri/glw"
)

func init() {
	// GL calls must stay on the thread owning the context.
	runtime.LockOSThread()
}

func main() { os.Exit(run()) }

func run() int {
	cfg := tri.DefaultConfig()

	sfc, err := tri.Open(cfg)
	if err != nil {
		fmt.Println(err)
		return 1
	}

	glctx, err := glw.Load()
	if err != nil {
		fmt.Println(err)
		return 1
	}

	r := tri.NewRunner(cfg, sfc, glctx)
	r.Setup()
	r.Run()
	return 0
}
