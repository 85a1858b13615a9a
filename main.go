// district9 runs the District 9 scene in the local terminal.
//
// Usage:
//
//	district9 [--tuning tuning.yaml] [--bgm track.mp3] [--mute] [--seed N] [--log file]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"district9/internal/audio"
	"district9/internal/config"
	"district9/internal/game"
)

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding scene tuning")
	bgm := flag.String("bgm", "", "mp3 to loop as background music (default: generated ambience)")
	mute := flag.Bool("mute", false, "Disable background music")
	volume := flag.Float64("volume", audio.DefaultVolume, "Background music volume, 0 to 1")
	seed := flag.Int64("seed", 0, "Random seed for NPC layout and dialogue (0 = time based)")
	logPath := flag.String("log", "", "Write debug logs to this file")
	flag.Parse()

	if err := run(*tuningPath, *bgm, *mute, *volume, *seed, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(tuningPath, bgm string, mute bool, volume float64, seed int64, logPath string) error {
	// The terminal belongs to the scene, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tuning, err := config.Load(tuningPath)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting", "seed", seed, "tuning", tuningPath)

	music := audio.NewMusic(log)
	if err := music.Start(audio.Options{Path: bgm, Volume: volume, Mute: mute}); err != nil {
		log.Warn("background music disabled", "err", err)
	}
	defer music.Stop()

	screen, err := game.OpenScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(screen, tuning, rand.New(rand.NewSource(seed)), log)
	runErr := g.Run(ctx)
	if err := game.SaveRunLog(g.RunLog()); err != nil {
		log.Warn("run log not saved", "err", err)
	}
	return runErr
}
