package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"

	"island-generator/generation"
)

// Frame is one island pushed over the stream
type Frame struct {
	Sequence uint64 `json:"sequence"`
	IslandResponse
}

// Streamer builds one island per interval and broadcasts it through the hub
type Streamer struct {
	hub      *Hub
	builder  *generation.MapBuilder
	seed     int64
	width    int
	height   int
	interval time.Duration
	log      *slog.Logger

	mu       sync.Mutex
	sequence uint64
	latest   []byte
}

// NewStreamer creates a streamer. Frames are deterministic for a given seed.
func NewStreamer(hub *Hub, seed int64, width, height, maxDepth int, interval time.Duration, log *slog.Logger) *Streamer {
	builder := generation.NewMapBuilderWithSource(generation.NewRandomSource(seed))
	builder.SetMaxDepth(maxDepth)
	return &Streamer{
		hub:      hub,
		builder:  builder,
		seed:     seed,
		width:    width,
		height:   height,
		interval: interval,
		log:      log,
	}
}

// Run produces frames until ctx is cancelled
func (s *Streamer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// Subscribe registers conn with the hub and sends it the latest frame
func (s *Streamer) Subscribe(ctx context.Context, conn *websocket.Conn) error {
	s.mu.Lock()
	seq, latest := s.sequence, s.latest
	client := s.hub.Add(conn)
	s.mu.Unlock()

	if latest == nil {
		return nil
	}
	if err := client.send(ctx, seq, latest); err != nil {
		s.hub.Remove(conn)
		return err
	}
	return nil
}

func (s *Streamer) tick() {
	grid, stats, err := s.builder.BuildWithStats(s.width, s.height)
	if err != nil {
		s.log.Error("build stream frame", "error", err)
		return
	}

	s.mu.Lock()
	frame := Frame{
		Sequence:       s.sequence + 1,
		IslandResponse: newIslandResponse(grid, stats, s.seed),
	}
	data, err := json.Marshal(frame)
	if err != nil {
		s.mu.Unlock()
		s.log.Error("encode stream frame", "error", err)
		return
	}
	s.sequence = frame.Sequence
	s.latest = data
	s.mu.Unlock()

	s.hub.Broadcast(frame.Sequence, data)
	s.log.Debug("stream frame", "sequence", frame.Sequence, "lobes", stats.Lobes, "clients", s.hub.Len())
}
