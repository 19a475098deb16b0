package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"

	"island-generator/components"
	"island-generator/config"
	"island-generator/generation"
)

// MaxImageSide bounds the pixel size of rendered PNGs
const MaxImageSide = 4096

var errBadRequest = errors.New("bad request")

// TileCounts reports how many tiles of each kind an island has
type TileCounts struct {
	Water int `json:"water"`
	Sand  int `json:"sand"`
	Grass int `json:"grass"`
}

// IslandResponse is the JSON form of a generated island
type IslandResponse struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Seed   int64      `json:"seed"`
	Lobes  int        `json:"lobes"`
	Counts TileCounts `json:"counts"`
	Rows   []string   `json:"rows"`
}

func newIslandResponse(grid *components.Grid, stats generation.Stats, seed int64) IslandResponse {
	return IslandResponse{
		Width:  grid.Width(),
		Height: grid.Height(),
		Seed:   seed,
		Lobes:  stats.Lobes,
		Counts: TileCounts{Water: stats.Water, Sand: stats.Sand, Grass: stats.Grass},
		Rows:   grid.Rows(),
	}
}

// islandRequest holds the parsed query of the island endpoints
type islandRequest struct {
	width  int
	height int
	seed   int64
}

func (s *Server) parseIslandRequest(r *http.Request) (islandRequest, error) {
	req := islandRequest{width: s.cfg.Width, height: s.cfg.Height}
	var err error
	if req.width, err = intParam(r, "width", req.width, 1, config.MaxDimension); err != nil {
		return req, err
	}
	if req.height, err = intParam(r, "height", req.height, 1, config.MaxDimension); err != nil {
		return req, err
	}

	if v := r.URL.Query().Get("seed"); v != "" {
		req.seed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, fmt.Errorf("%w: invalid seed %q", errBadRequest, v)
		}
	} else {
		req.seed = time.Now().UnixNano()
	}
	return req, nil
}

func intParam(r *http.Request, name string, def, lo, hi int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", errBadRequest, name, v)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %s must be within %d..%d", errBadRequest, name, lo, hi)
	}
	return n, nil
}

func (s *Server) build(req islandRequest) (*components.Grid, generation.Stats, error) {
	builder := generation.NewMapBuilderWithSource(generation.NewRandomSource(req.seed))
	builder.SetMaxDepth(s.maxDepth)
	return builder.BuildWithStats(req.width, req.height)
}

// GetIsland handles GET /api/island - returns a fresh island as glyph rows
func (s *Server) GetIsland(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseIslandRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	grid, stats, err := s.build(req)
	if err != nil {
		s.log.Error("build island", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to build island")
		return
	}
	s.log.Info("island built", "width", req.width, "height", req.height, "seed", req.seed, "lobes", stats.Lobes, "elapsed", stats.Elapsed)

	respondJSON(w, http.StatusOK, newIslandResponse(grid, stats, req.seed))
}

// GetIslandPNG handles GET /api/island.png - returns a fresh island rendered as an image
func (s *Server) GetIslandPNG(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseIslandRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	tileSize, err := intParam(r, "tile", s.cfg.TileSize, 1, MaxImageSide)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.width*tileSize > MaxImageSide || req.height*tileSize > MaxImageSide {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("image larger than %dpx", MaxImageSide))
		return
	}

	grid, _, err := s.build(req)
	if err != nil {
		s.log.Error("build island", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to build island")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Island-Seed", strconv.FormatInt(req.seed, 10))
	if err := png.Encode(w, DrawGrid(grid, s.mapping, tileSize)); err != nil {
		s.log.Error("encode png", "error", err)
	}
}

// Stream handles GET /api/stream - pushes a new island every interval
func (s *Server) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.log.Warn("websocket accept", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if err := s.streamer.Subscribe(r.Context(), conn); err != nil {
		return
	}
	defer s.hub.Remove(conn)

	// Clients only listen; CloseRead cancels ctx once they hang up
	ctx := conn.CloseRead(r.Context())
	<-ctx.Done()
}

// Health handles GET /api/health
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
