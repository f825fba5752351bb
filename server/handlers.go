package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/propkit/propkit/inference"
	"github.com/propkit/propkit/logic"
	"github.com/propkit/propkit/ruleset"
	"github.com/propkit/propkit/truthtable"
)

type parseRequest struct {
	Formula string `json:"formula" binding:"required"`
}

type parseResponse struct {
	Canonical string   `json:"canonical"`
	Atoms     []string `json:"atoms"`
}

// syntaxStatus renders a syntax error with its position; other errors get
// a bare message.
func syntaxStatus(c *gin.Context, err error) {
	var se *logic.SyntaxError
	if errors.As(err, &se) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "position": se.Pos})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (s *Server) handleParse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f, err := logic.Parse(req.Formula)
	if err != nil {
		s.logger.Debug("Parse failed", "formula", req.Formula, "error", err)
		syntaxStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, parseResponse{Canonical: f.String(), Atoms: logic.Atoms(f)})
}

type namedFormulaRequest struct {
	Name    string `json:"name" binding:"required"`
	Formula string `json:"formula" binding:"required"`
}

type truthTableRequest struct {
	Formulas []namedFormulaRequest `json:"formulas" binding:"required,min=1"`
	Atoms    []string              `json:"atoms"`
	Filter   *namedFormulaRequest  `json:"filter"`
}

func (s *Server) handleTruthTable(c *gin.Context) {
	var req truthTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	formulas := make([]truthtable.NamedFormula, len(req.Formulas))
	atomUnion := make(map[string]struct{})
	for i, nf := range req.Formulas {
		f, err := logic.Parse(nf.Formula)
		if err != nil {
			syntaxStatus(c, err)
			return
		}
		formulas[i] = truthtable.NamedFormula{Name: nf.Name, Formula: f}
		for name := range logic.AtomSet(f) {
			atomUnion[name] = struct{}{}
		}
	}
	atomCount := len(req.Atoms)
	if req.Atoms == nil {
		atomCount = len(atomUnion)
	}
	if atomCount > MaxTableAtoms {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "too many atoms for a full table",
			"atoms": atomCount,
			"max":   MaxTableAtoms,
		})
		return
	}

	var table truthtable.Table
	if req.Filter != nil {
		filter, err := logic.Parse(req.Filter.Formula)
		if err != nil {
			syntaxStatus(c, err)
			return
		}
		table = truthtable.GenerateFiltered(formulas, req.Atoms, truthtable.NamedFormula{Name: req.Filter.Name, Formula: filter})
	} else {
		table = truthtable.Generate(formulas, req.Atoms)
	}
	c.JSON(http.StatusOK, table)
}

type forwardRequest struct {
	Domain string   `json:"domain" binding:"required"`
	Facts  []string `json:"facts"`
}

type forwardResponse struct {
	FinalFacts     []string                  `json:"finalFacts"`
	Steps          []inference.Step          `json:"steps"`
	Contradictions []inference.Contradiction `json:"contradictions"`
}

func (s *Server) handleForward(c *gin.Context) {
	var req forwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rules, ok := s.domainRules(req.Domain)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown domain", "domain": req.Domain})
		return
	}
	result := inference.ForwardChain(inference.NewFactSet(req.Facts...), rules)
	s.logger.Info("Forward chaining complete",
		"domain", req.Domain,
		"initialFacts", len(req.Facts),
		"finalFacts", len(result.FinalFacts),
		"steps", len(result.Steps),
	)
	c.JSON(http.StatusOK, forwardResponse{
		FinalFacts:     result.FinalFacts.Names(),
		Steps:          result.Steps,
		Contradictions: result.Contradictions,
	})
}

type backwardRequest struct {
	Domain      string   `json:"domain" binding:"required"`
	Goal        string   `json:"goal" binding:"required"`
	Facts       []string `json:"facts"`
	SharedGuard bool     `json:"sharedGuard"`
}

func (s *Server) handleBackward(c *gin.Context) {
	var req backwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rules, ok := s.domainRules(req.Domain)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown domain", "domain": req.Domain})
		return
	}
	guard := inference.GuardPerPath
	if req.SharedGuard {
		guard = inference.GuardShared
	}
	proof := inference.BackwardChainGuard(req.Goal, inference.NewFactSet(req.Facts...), rules, guard)
	s.logger.Info("Backward chaining complete",
		"domain", req.Domain,
		"goal", req.Goal,
		"succeeded", proof.Succeeded,
	)
	c.JSON(http.StatusOK, proof)
}

func (s *Server) handleListRules(c *gin.Context) {
	domain := c.Param("domain")
	records, ok := s.domainRecords(domain)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown domain", "domain": domain})
		return
	}
	c.JSON(http.StatusOK, gin.H{"domain": domain, "rules": records})
}

func (s *Server) handleAddRule(c *gin.Context) {
	domain := c.Param("domain")
	var rec ruleset.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rule, err := ruleset.CompileRecord(rec)
	if err != nil {
		syntaxStatus(c, err)
		return
	}
	s.addRule(domain, rule)
	s.logger.Info("Rule added", "domain", domain, "id", rule.ID)
	c.JSON(http.StatusCreated, gin.H{"domain": domain, "id": rule.ID})
}
