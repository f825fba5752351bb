// Package server exposes the reasoning engine over HTTP as a small JSON
// API: formula parsing, truth tables, forward and backward chaining, and
// per-domain rule management.
package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/propkit/propkit/inference"
	"github.com/propkit/propkit/ruleset"
)

// Version is the API version string reported by the health endpoint.
const Version = "0.1.0"

// MaxTableAtoms caps truth-table requests: the generator itself performs
// no guard, so the service bounds the atom count before invoking it.
const MaxTableAtoms = 16

// A Server holds per-domain rule sets and the HTTP routes over them. Rule
// sets are injected at construction; there is no ambient default.
type Server struct {
	mu       sync.RWMutex
	ruleSets map[string][]inference.Rule
	router   *gin.Engine
	logger   *slog.Logger
}

// New builds a server around the given rule sets. A nil logger falls back
// to slog.Default().
func New(ruleSets map[string][]inference.Rule, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	sets := make(map[string][]inference.Rule, len(ruleSets))
	for domain, rules := range ruleSets {
		sets[domain] = append([]inference.Rule(nil), rules...)
	}
	s := &Server{ruleSets: sets, logger: logger}

	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/v1")
	v1.GET("/health", s.handleHealth)
	v1.POST("/parse", s.handleParse)
	v1.POST("/truthtable", s.handleTruthTable)
	v1.POST("/forward", s.handleForward)
	v1.POST("/backward", s.handleBackward)
	v1.GET("/rules/:domain", s.handleListRules)
	v1.POST("/rules/:domain", s.handleAddRule)

	s.router = router
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("Starting server", "addr", addr, "version", Version)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": Version})
}

// domainRules returns a copy of the named domain's rules, so handlers can
// run the engine without holding the lock.
func (s *Server) domainRules(domain string) ([]inference.Rule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rules, ok := s.ruleSets[domain]
	return append([]inference.Rule(nil), rules...), ok
}

func (s *Server) addRule(domain string, rule inference.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ruleSets[domain] = append(s.ruleSets[domain], rule)
}

func (s *Server) domainRecords(domain string) ([]ruleset.Record, bool) {
	rules, ok := s.domainRules(domain)
	return ruleset.Records(rules), ok
}
