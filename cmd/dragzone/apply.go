package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/dragzone/internal/daemon"
	"github.com/1broseidon/dragzone/internal/platform"
)

func runApply(args []string) int {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: dragzone apply [--titlebar NAME] [--window ID | --title TEXT] [--watch | --clear]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Publish the drag zones of a title bar profile on an X11 window.")
		fmt.Fprintln(os.Stderr, "With --watch the zones are recomputed every time the window is resized,")
		fmt.Fprintln(os.Stderr, "until the window closes or the process is interrupted.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	var profile profileOptions
	var target targetOptions
	profile.register(fs)
	target.register(fs)
	watch := fs.Bool("watch", false, "Keep running and reapply on resize")
	clearZones := fs.Bool("clear", false, "Remove previously published drag zones")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "apply takes no arguments")
		fs.Usage()
		return 2
	}
	if *watch && *clearZones {
		fmt.Fprintln(os.Stderr, "--watch and --clear are mutually exclusive")
		return 2
	}

	res, err := loadConfig(profile.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg := res.Config
	logger := newLogger(cfg)

	name, tb, err := profile.profile(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	backend, err := platform.NewDisplayBackend(cfg.Display, cfg.PropertyName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Close()

	id, err := target.resolve(backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *clearZones {
		if err := backend.ApplyDragZones(id, nil); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("window 0x%x: drag zones cleared\n", uint32(id))
		return 0
	}

	applier := daemon.NewApplier(backend, daemon.ApplierConfig{
		Name:     name,
		Titlebar: tb,
		Logger:   logger,
	})

	if !*watch {
		result, err := applier.Apply(id)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("window 0x%x: %d drag zones (width %d, scale %.2f)\n",
			uint32(result.Window), len(result.Scaled), result.Width, result.Scale)
		return 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := applier.Watch(ctx, id); err != nil {
		logger.Error("watch failed", "window_id", uint32(id), "error", err)
		return 1
	}
	return 0
}
