package cache

import (
	"github.com/dgraph-io/ristretto"
	ristrettoCache "github.com/eko/gocache/store/ristretto/v4"
	"github.com/rs/zerolog/log"
)

// R is the raw ristretto instance, exposed for the places that need to
// wait for pending writes to be applied.
var R *ristretto.Cache

// S is the shared cache store used across services.
var S *ristrettoCache.RistrettoStore

func init() {
	inner, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 27,
		BufferItems: 64,
	})
	if err != nil {
		log.Panic().Err(err).Msg("An error occurred when setting up cache store.")
	}

	R = inner
	S = ristrettoCache.NewRistretto(inner)
}
