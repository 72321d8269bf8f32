// Package core is the normalization-and-aggregation engine: it projects
// the heterogeneous source tables onto unified streams through the store
// contract, classifies timestamps into temporal buckets, and computes the
// ranked, windowed and summarized statistics the API serves.
package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/bayviewlabs/safetylens/internal/contract"
)

// Service bundles the injected collaborators every operation needs. There
// is no ambient global state; construct one per process and pass it down.
type Service struct {
	store contract.Store
	geo   contract.Geocoder

	// Injection points for tests.
	now   func() time.Time
	newID func() string
}

// NewService builds a Service around a store and an optional geocoder.
// A nil geocoder disables coordinate resolution on the complaint path.
func NewService(store contract.Store, geo contract.Geocoder) *Service {
	return &Service{
		store: store,
		geo:   geo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}
