package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/larkspur-chess/engine/pkg/engine"
	"github.com/larkspur-chess/engine/pkg/engine/console"
	"github.com/pkg/profile"
	"github.com/seekerror/logw"
)

var (
	configFile = flag.String("config", "./config.toml", "path to configuration settings file")
	depth      = flag.Int("depth", 0, "search depth override (zero uses config or default)")
	doProfile  = flag.Bool("profile", false, "collect a CPU profile under ./bin")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: larkspur [options]

larkspur is a fixed-depth negamax chess engine with a text console loop.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("./bin")).Stop()
	}

	opts, err := engine.LoadConfig(*configFile)
	if err != nil {
		logw.Infof(ctx, "Config file not found, using defaults: %v", err)
	}
	if *depth > 0 {
		opts.Depth = uint(*depth)
	}

	e := engine.New(ctx, "larkspur", "larkspur-chess", engine.WithOptions(opts))

	driver := console.NewDriver(e, os.Stdin, os.Stdout)
	os.Exit(driver.Run(ctx))
}
