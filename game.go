package main

import (
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"island-generator/config"
	"island-generator/generation"
	"island-generator/rendering"
	"island-generator/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	islandSystem *systems.IslandSystem
	renderSystem *rendering.RenderSystem
	messageLog   *systems.MessageLog
	width        int
	height       int
}

// NewGame creates a new game instance
func NewGame(cfg *config.Config, log *slog.Logger) (*Game, error) {
	tileMapping, err := cfg.TileMapping()
	if err != nil {
		return nil, err
	}

	builder := generation.NewMapBuilder()
	if cfg.Seed != 0 {
		builder.SetSeed(cfg.Seed)
	}
	builder.SetMaxDepth(cfg.MaxDepth)

	messageLog := systems.NewMessageLog(100, log)
	islandSystem, err := systems.NewIslandSystem(builder, cfg.Width, cfg.Height, cfg.RegenerateInterval(), messageLog)
	if err != nil {
		return nil, err
	}

	width, height := config.GetWindowSize(cfg.Width, cfg.Height, cfg.TileSize)
	return &Game{
		islandSystem: islandSystem,
		renderSystem: rendering.NewRenderSystem(tileMapping, cfg.TileSize, config.BackgroundColor),
		messageLog:   messageLog,
		width:        width,
		height:       height,
	}, nil
}

// Update updates the game state.
func (g *Game) Update() error {
	// Toggle the status overlay with F1
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.renderSystem.ToggleStatus()
	}

	return g.islandSystem.Update(1.0 / float64(ebiten.TPS()))
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen, g.islandSystem.Grid(), strings.Join(g.messageLog.RecentMessages(3), "\n"))
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
