package variant

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/callouthq/callout/pkg/callout/models"
)

// Selector picks one of two A/B variants per viewer session. The pick
// is made once and cached against the session ID, so re-renders within
// a session always see the same variant. There is no cross-visit
// persistence: the cache is in-memory only, and the same visitor may
// land on the other variant next visit.
type Selector struct {
	mu    sync.Mutex
	rng   *rand.Rand
	picks map[string]int
}

// NewSelector creates a selector with a time-seeded source
func NewSelector() *Selector {
	return &Selector{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		picks: make(map[string]int),
	}
}

// Choose returns variant A or B for the given session, uniformly at
// random on first call and the cached pick on every call after. It
// never synthesizes a third value.
func (s *Selector) Choose(sessionID string, variants [2]models.CtaData) models.CtaData {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.picks[sessionID]
	if !ok {
		idx = s.rng.Intn(2)
		s.picks[sessionID] = idx
	}
	return variants[idx]
}

// NewSessionID mints a viewer session identifier
func NewSessionID() string {
	return ulid.Make().String()
}
