package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/xtding233/fuzzy-runtime/internal/config"
	"github.com/xtding233/fuzzy-runtime/internal/fuzzy"
	"github.com/xtding233/fuzzy-runtime/internal/record"
	"github.com/xtding233/fuzzy-runtime/internal/simulate"
)

type intResp struct {
	Value int `json:"value"`
}

type boolResp struct {
	Value bool `json:"value"`
}

type floatResp struct {
	Value float64 `json:"value"`
}

type lineResp struct {
	Line string `json:"line"`
}

type rateResp struct {
	Construct string  `json:"construct"`
	Trials    int     `json:"trials"`
	Rate      float64 `json:"rate"`
}

type server struct {
	cfg atomic.Pointer[config.Config]
	rt  *fuzzy.Runtime
}

func newServer(cfg config.Config) *server {
	s := &server{rt: fuzzy.New(nil)}
	s.cfg.Store(&cfg)
	return s
}

func parseInt(r *http.Request, key string) (int, bool, string) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, false, ""
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return n, true, ""
}

func parseFloat(r *http.Request, key string) (float64, bool, string) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, false, ""
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return f, true, ""
}

func parseBool(r *http.Request, key string) (bool, bool, string) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return false, false, ""
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false, "invalid " + key
	}
	return b, true, ""
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *server) handleKindaInt(w http.ResponseWriter, r *http.Request) {
	base, ok, msg := parseInt(r, "base")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !ok {
		http.Error(w, "missing param base", http.StatusBadRequest)
		return
	}
	writeJSON(w, intResp{Value: s.rt.KindaInt(base)})
}

func (s *server) handleFuzzyAssign(w http.ResponseWriter, r *http.Request) {
	value, ok, msg := parseInt(r, "value")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !ok {
		http.Error(w, "missing param value", http.StatusBadRequest)
		return
	}
	writeJSON(w, intResp{Value: s.rt.FuzzyAssign(value)})
}

// /kinda_binary runs the default 40/40/20 split; give pos and neg together
// for the weighted form. Thresholds are passed through unvalidated.
func (s *server) handleKindaBinary(w http.ResponseWriter, r *http.Request) {
	pos, hasPos, msg1 := parseInt(r, "pos")
	neg, hasNeg, msg2 := parseInt(r, "neg")
	if msg1 != "" || msg2 != "" {
		http.Error(w, strings.TrimSpace(msg1+" "+msg2), http.StatusBadRequest)
		return
	}
	if hasPos != hasNeg {
		http.Error(w, "pos and neg must be given together", http.StatusBadRequest)
		return
	}
	if hasPos {
		writeJSON(w, intResp{Value: s.rt.KindaBinaryWeighted(pos, neg)})
		return
	}
	writeJSON(w, intResp{Value: s.rt.KindaBinary()})
}

// boolConstruct maps a construct name to its unconditional form on rt.
func boolConstruct(rt *fuzzy.Runtime, name string) (func() bool, bool) {
	switch name {
	case "sometimes":
		return rt.Sometimes, true
	case "maybe":
		return rt.Maybe, true
	case "probably":
		return rt.Probably, true
	case "rarely":
		return rt.Rarely, true
	}
	return nil, false
}

// handleChance serves the gated booleans; cond is optional.
func (s *server) handleChance(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cond, hasCond, msg := parseBool(r, "cond")
		if msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		var v bool
		switch name {
		case "sometimes":
			if hasCond {
				v = s.rt.SometimesIf(cond)
			} else {
				v = s.rt.Sometimes()
			}
		case "maybe":
			if hasCond {
				v = s.rt.MaybeIf(cond)
			} else {
				v = s.rt.Maybe()
			}
		case "probably":
			if hasCond {
				v = s.rt.ProbablyIf(cond)
			} else {
				v = s.rt.Probably()
			}
		case "rarely":
			if hasCond {
				v = s.rt.RarelyIf(cond)
			} else {
				v = s.rt.Rarely()
			}
		}
		writeJSON(w, boolResp{Value: v})
	}
}

func (s *server) handleIsh(w http.ResponseWriter, r *http.Request) {
	value, ok, msg := parseFloat(r, "value")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !ok {
		http.Error(w, "missing param value", http.StatusBadRequest)
		return
	}
	writeJSON(w, floatResp{Value: s.rt.IshValue(value)})
}

// /sorta_print formats into a buffer and returns the tagged line instead of
// writing to the server's stdout.
func (s *server) handleSortaPrint(w http.ResponseWriter, r *http.Request) {
	msg := r.URL.Query().Get("msg")
	if msg == "" {
		http.Error(w, "missing param msg", http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	rt := &fuzzy.Runtime{RNG: s.rt.RNG, Out: &buf}
	rt.SortaPrint("%s", msg)
	writeJSON(w, lineResp{Line: strings.TrimSuffix(buf.String(), "\n")})
}

// /record runs a construct n times under a recorder and returns the captured
// session, draws included.
func (s *server) handleRecord(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("construct")
	n, hasN, msg := parseInt(r, "n")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !hasN {
		n = 100
	}
	cfg := s.cfg.Load()
	if n < 1 || n > cfg.Simulate.MaxTrials {
		http.Error(w, "n out of range", http.StatusBadRequest)
		return
	}

	rec := record.NewRecorder(nil)
	rt := fuzzy.New(rec)
	if name == "kinda_binary" {
		for i := 0; i < n; i++ {
			rt.KindaBinary()
		}
	} else {
		f, ok := boolConstruct(rt, name)
		if !ok {
			http.Error(w, "unknown construct", http.StatusBadRequest)
			return
		}
		for i := 0; i < n; i++ {
			f()
		}
	}
	writeJSON(w, rec.Session())
}

// simRuntime picks the runtime for a simulation request: seeded when the
// request pins a seed, the live shared stream otherwise.
func (s *server) simRuntime(r *http.Request) (*fuzzy.Runtime, string) {
	seed, hasSeed, msg := parseInt(r, "seed")
	if msg != "" {
		return nil, msg
	}
	if hasSeed {
		return fuzzy.New(fuzzy.NewSeededRNG(uint64(seed))), ""
	}
	return s.rt, ""
}

func (s *server) trials(r *http.Request) (int, string) {
	cfg := s.cfg.Load()
	trials, ok, msg := parseInt(r, "trials")
	if msg != "" {
		return 0, msg
	}
	if !ok {
		return cfg.Simulate.DefaultTrials, ""
	}
	if trials < 1 || trials > cfg.Simulate.MaxTrials {
		return 0, "trials out of range"
	}
	return trials, ""
}

func (s *server) handleSimRate(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("construct")
	rt, msg := s.simRuntime(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	f, ok := boolConstruct(rt, name)
	if !ok {
		http.Error(w, "unknown construct", http.StatusBadRequest)
		return
	}
	trials, msg := s.trials(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	rate, err := simulate.TrueRate(trials, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, rateResp{Construct: name, Trials: trials, Rate: rate})
}

func (s *server) handleSimTernary(w http.ResponseWriter, r *http.Request) {
	rt, msg := s.simRuntime(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	trials, msg := s.trials(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	pos, hasPos, msg1 := parseInt(r, "pos")
	neg, hasNeg, msg2 := parseInt(r, "neg")
	if msg1 != "" || msg2 != "" {
		http.Error(w, strings.TrimSpace(msg1+" "+msg2), http.StatusBadRequest)
		return
	}
	if hasPos != hasNeg {
		http.Error(w, "pos and neg must be given together", http.StatusBadRequest)
		return
	}
	f := rt.KindaBinary
	if hasPos {
		f = func() int { return rt.KindaBinaryWeighted(pos, neg) }
	}
	split, err := simulate.EstimateTernary(trials, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, split)
}

func (s *server) handleSimFirstTrue(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("construct")
	rt, msg := s.simRuntime(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	f, ok := boolConstruct(rt, name)
	if !ok {
		http.Error(w, "unknown construct", http.StatusBadRequest)
		return
	}
	trials, msg := s.trials(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	sum, err := simulate.Run(simulate.GoalFirstTrue, trials, 0, f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, sum)
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/kinda_int", s.handleKindaInt)
	r.Get("/fuzzy_assign", s.handleFuzzyAssign)
	r.Get("/kinda_binary", s.handleKindaBinary)
	r.Get("/sometimes", s.handleChance("sometimes"))
	r.Get("/maybe", s.handleChance("maybe"))
	r.Get("/probably", s.handleChance("probably"))
	r.Get("/rarely", s.handleChance("rarely"))
	r.Get("/ish", s.handleIsh)
	r.Get("/sorta_print", s.handleSortaPrint)
	r.Get("/record", s.handleRecord)
	r.Route("/simulate", func(r chi.Router) {
		r.Get("/rate", s.handleSimRate)
		r.Get("/ternary", s.handleSimTernary)
		r.Get("/first_true", s.handleSimFirstTrue)
	})
	return r
}

func main() {
	_ = godotenv.Load()

	path := os.Getenv("FUZZY_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	s := newServer(cfg)

	// hot reload covers the simulate limits; an addr change needs a restart
	watcher := config.NewWatcher(path, 2*time.Second, func(p string) {
		next, err := config.Load(p)
		if err != nil {
			log.Printf("config reload failed: %v", err)
			return
		}
		s.cfg.Store(&next)
		log.Printf("config reloaded from %s", p)
	})
	watcher.Start()
	defer watcher.Stop()

	srv := &http.Server{
		Addr:        cfg.Server.Addr,
		Handler:     s.routes(),
		ReadTimeout: cfg.Server.ReadTimeout,
	}
	log.Printf("listening on %s ...", cfg.Server.Addr)
	log.Fatal(srv.ListenAndServe())
}
