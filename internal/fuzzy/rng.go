package fuzzy

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSource abstract

type RandomSource interface {
	Uint64() uint64
}

// timeRNG is the process-wide source shared by every construct. It seeds
// itself exactly once, from the wall clock, on the first draw of the process;
// draws after that are serialized by the mutex so concurrent generated code
// sees a single global stream.
type timeRNG struct {
	once  sync.Once
	mu    sync.Mutex
	r     *rand.Rand
	seeds int // bumped inside once.Do; read by the single-seed test
}

func (t *timeRNG) seed() {
	t.r = rand.New(rand.NewPCG(uint64(time.Now().Unix()), 0))
	t.seeds++
}

func (t *timeRNG) Uint64() uint64 {
	t.once.Do(t.seed)
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.r.Uint64()
}

var shared = &timeRNG{}

// DefaultRNG returns the shared time-seeded source. It is never reseeded.
func DefaultRNG() RandomSource { return shared }

// Replicable RNG (tests, simulation)
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Uint64() uint64 { return s.r.Uint64() }

// uniform draws an integer in [0, n) by modulo, the same way the reference
// runtime takes rand() % n. The modulo bias for non-power-of-two n is on the
// order of n/2^64 here, far below any observable tolerance.
func uniform(rng RandomSource, n int) int {
	return int(rng.Uint64() % uint64(n))
}

// unitFloat maps 53 random bits to [0, 1).
func unitFloat(rng RandomSource) float64 {
	u := rng.Uint64() >> 11 // 53 bits
	return float64(u) / (1 << 53)
}
