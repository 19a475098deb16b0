package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"island-generator/config"
	"island-generator/generation"
	"island-generator/server"
)

func main() {
	cfg := config.DefaultConfig()

	var (
		configPath = flag.String("config", "", "path to a JSON config file")
		configURL  = flag.String("config-url", "", "fetch the JSON config from a go-getter source (http, git::, s3::, ...)")
		serve      = flag.Bool("serve", false, "run the HTTP preview server instead of opening a window")
		ascii      = flag.Bool("ascii", false, "print one island to stdout and exit")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width in tiles")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height in tiles")
	flag.IntVar(&cfg.TileSize, "tile-size", cfg.TileSize, "tile size in pixels")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = clock)")
	flag.IntVar(&cfg.RegenerateMs, "regenerate-ms", cfg.RegenerateMs, "milliseconds between islands")
	flag.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "recursion cap for the land generator (0 = none)")
	flag.StringVar(&cfg.ServerAddr, "addr", cfg.ServerAddr, "listen address for -serve")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := loadConfig(ctx, cfg, *configPath, *configURL); err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	config.ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	switch {
	case *ascii:
		if err := printIsland(cfg); err != nil {
			logger.Error("build island", "error", err)
			os.Exit(1)
		}
	case *serve:
		srv, err := server.New(cfg, logger)
		if err != nil {
			logger.Error("create server", "error", err)
			os.Exit(1)
		}
		if err := srv.Start(ctx); err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	default:
		game, err := NewGame(cfg, logger)
		if err != nil {
			log.Fatal(err)
		}
		windowWidth, windowHeight := config.GetWindowSize(cfg.Width, cfg.Height, cfg.TileSize)
		ebiten.SetWindowSize(windowWidth, windowHeight)
		ebiten.SetWindowTitle("Island Generator")
		if err := ebiten.RunGame(game); err != nil {
			log.Fatal(err)
		}
	}
}

// loadConfig merges a config file or remote source into cfg; flags set on
// the command line keep their values
func loadConfig(ctx context.Context, cfg *config.Config, path, src string) error {
	var (
		fromFile *config.Config
		err      error
	)
	switch {
	case src != "":
		fromFile, err = config.LoadSource(ctx, src)
	case path != "":
		fromFile, err = config.LoadFile(path)
	default:
		return nil
	}
	if err != nil {
		return err
	}

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	config.Merge(cfg, fromFile, explicit)
	return nil
}

func printIsland(cfg *config.Config) error {
	builder := generation.NewMapBuilder()
	if cfg.Seed != 0 {
		builder.SetSeed(cfg.Seed)
	}
	builder.SetMaxDepth(cfg.MaxDepth)

	grid, err := builder.Build(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	fmt.Println(grid)
	return nil
}
