package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/nvquang/tikz-compiler/internal/entity"
)

// ArtifactCache keeps the encoded outputs of recent compilations so
// identical requests skip the external toolchain entirely.
type ArtifactCache interface {
	Get(key string) (*entity.Artifacts, bool)
	Set(key string, artifacts *entity.Artifacts)
}

type memoryCache struct {
	store *gocache.Cache
}

func New(ttl, cleanupInterval time.Duration) ArtifactCache {
	return &memoryCache{
		store: gocache.New(ttl, cleanupInterval),
	}
}

func (c *memoryCache) Get(key string) (*entity.Artifacts, bool) {
	value, found := c.store.Get(key)
	if !found {
		return nil, false
	}

	artifacts, ok := value.(*entity.Artifacts)
	if !ok {
		return nil, false
	}
	return artifacts, true
}

func (c *memoryCache) Set(key string, artifacts *entity.Artifacts) {
	c.store.Set(key, artifacts, gocache.DefaultExpiration)
}

// Key digests the full request tuple, so any parameter change produces a
// different cache entry.
func Key(req entity.CompileRequest) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%d|%s",
		req.TikzCode, req.OutputFormat, req.DPI, req.Background))
	return hex.EncodeToString(sum[:])
}
