package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/richinsley/gltemplate/app"
	options "github.com/richinsley/gltemplate/options"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("OpenGL cube scene viewer/recorder")
		flag.PrintDefaults()
		return
	}

	game := app.NewGame(opts)
	if err := game.Initialize(); err != nil {
		game.Reset()
		log.Fatalf("Initialization failed: %v", err)
	}

	err := game.Run()
	game.Reset()
	if err != nil {
		log.Fatalf("Offscreen rendering failed: %v", err)
	}
	if opts.Recording() {
		log.Printf("Successfully rendered to %s", *opts.OutputFile)
	}
}
