package main

import (
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/milannvidia/lclgo/problem"
	"github.com/milannvidia/lclgo/search"
)

// server is the in-memory registry backing the HTTP handle surface: one
// Problem handle per successful POST /problems, and one Driver handle per
// successful POST /searches. Both maps are guarded by mu, independently of
// the sync.Mutex each Problem embeds for its own driver-exclusivity
// invariant during Run.
type server struct {
	logger hclog.Logger

	mu       sync.Mutex
	problems map[string]*problem.Problem
	searches map[string]search.Driver
}

func newServer(logger hclog.Logger) *server {
	return &server{
		logger:   logger,
		problems: make(map[string]*problem.Problem),
		searches: make(map[string]search.Driver),
	}
}

func (s *server) putProblem(id string, p *problem.Problem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.problems[id] = p
}

func (s *server) getProblem(id string) (*problem.Problem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.problems[id]
	return p, ok
}

func (s *server) putSearch(id string, d search.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches[id] = d
}

func (s *server) getSearch(id string) (search.Driver, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.searches[id]
	return d, ok
}
