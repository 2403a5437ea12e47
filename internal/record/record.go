// Package record captures the raw draw stream behind a run of fuzzy
// constructs, so a surprising run of generated code can be replayed
// decision-for-decision later.
package record

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xtding233/fuzzy-runtime/internal/fuzzy"
)

// Session is one captured draw stream.
type Session struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Draws     []uint64  `json:"draws"`
}

// Recorder wraps a RandomSource and captures every draw in call order.
type Recorder struct {
	mu      sync.Mutex
	src     fuzzy.RandomSource
	session Session
}

// NewRecorder starts a session over src; nil means the shared source.
func NewRecorder(src fuzzy.RandomSource) *Recorder {
	if src == nil {
		src = fuzzy.DefaultRNG()
	}
	return &Recorder{
		src:     src,
		session: Session{ID: uuid.NewString(), StartedAt: time.Now().UTC()},
	}
}

// Uint64 draws from the wrapped source under the lock, so the recorded order
// is exactly the served order.
func (r *Recorder) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.src.Uint64()
	r.session.Draws = append(r.session.Draws, v)
	return v
}

// Session returns a snapshot of what has been captured so far.
func (r *Recorder) Session() Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.session
	s.Draws = append([]uint64(nil), s.Draws...)
	return s
}

// Replayer serves a captured stream back in order. Past the end it switches
// to live draws so a replayed program that takes an extra branch keeps
// running; Overrun reports how many live draws that took.
type Replayer struct {
	mu      sync.Mutex
	draws   []uint64
	pos     int
	live    fuzzy.RandomSource
	overrun int
}

// NewReplayer replays s, falling back to live when the stream runs out;
// nil live means the shared source.
func NewReplayer(s Session, live fuzzy.RandomSource) *Replayer {
	if live == nil {
		live = fuzzy.DefaultRNG()
	}
	return &Replayer{draws: append([]uint64(nil), s.Draws...), live: live}
}

func (p *Replayer) Uint64() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pos < len(p.draws) {
		v := p.draws[p.pos]
		p.pos++
		return v
	}
	p.overrun++
	return p.live.Uint64()
}

// Overrun reports how many draws were served live after the recorded stream
// was exhausted.
func (p *Replayer) Overrun() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.overrun
}

// Save writes a session as JSON.
func Save(w io.Writer, s Session) error {
	return json.NewEncoder(w).Encode(s)
}

// Load reads a session written by Save.
func Load(r io.Reader) (Session, error) {
	var s Session
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Session{}, err
	}
	return s, nil
}
