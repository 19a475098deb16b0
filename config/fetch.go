package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// Fetch downloads a config file from any go-getter source (local path,
// http(s), git::, s3::, gcs::) into dir and returns the local path
func Fetch(ctx context.Context, src, dir string) (string, error) {
	if src == "" {
		return "", fmt.Errorf("config source is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}

	dst := filepath.Join(dir, "island.json")
	if err := getter.GetFile(dst, src, getter.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("failed to fetch config from %s: %w", src, err)
	}
	return dst, nil
}

// LoadSource fetches src into a temporary directory and loads it
func LoadSource(ctx context.Context, src string) (*Config, error) {
	dir, err := os.MkdirTemp("", "island-config-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path, err := Fetch(ctx, src, dir)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}
