package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// GenerationGuard prevents two concurrent summary runs for the same folder in
// one process. The TTL is a safety valve: if a run crashes without releasing,
// the folder unlocks itself.
type GenerationGuard struct {
	cache *cache.Cache
}

func NewGenerationGuard() *GenerationGuard {
	return &GenerationGuard{
		cache: cache.New(10*time.Minute, 15*time.Minute),
	}
}

func (g *GenerationGuard) TryAcquire(folderId uuid.UUID) bool {
	err := g.cache.Add(folderId.String(), struct{}{}, cache.DefaultExpiration)
	return err == nil
}

func (g *GenerationGuard) Release(folderId uuid.UUID) {
	g.cache.Delete(folderId.String())
}
