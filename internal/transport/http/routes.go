// Package http is a thin demo transport exposing the engine's five core
// queries as JSON endpoints.
package http

import (
	cryptorand "crypto/rand"
	"encoding/hex"
	mathrand "math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"sudoku-engine/internal/sudoku/engine"
	"sudoku-engine/internal/sudoku/engine/constraints"
	"sudoku-engine/pkg/config"
	"sudoku-engine/pkg/constants"
)

var cfg *config.Config
var builder *engine.ConstraintBuilder

func init() {
	builder = engine.NewConstraintBuilder()
	constraints.RegisterBuiltins(builder)
}

// RegisterRoutes wires the demo HTTP surface onto r.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.POST("/countSolutions", countSolutionsHandler)
		api.POST("/trueCandidates", trueCandidatesHandler)
		api.POST("/session/start", sessionStartHandler)
		api.POST("/session/:id/step", sessionStepHandler)
		api.POST("/session/:id/logicalSolve", sessionLogicalSolveHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// boardDataRequest is the wire shape of a solve/countSolutions/
// trueCandidates/session-start request body.
type boardDataRequest struct {
	Size        int                 `json:"size"`
	Grid        [][]engine.CellSpec `json:"grid"`
	Constraints map[string]any      `json:"constraints"`
}

func (r *boardDataRequest) toBoardData() *engine.BoardData {
	constraintInput := r.Constraints
	if constraintInput == nil {
		constraintInput = map[string]any{}
	}
	return &engine.BoardData{Size: r.Size, Grid: r.Grid, Constraints: constraintInput}
}

func solveHandler(c *gin.Context) {
	var req boardDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var opts engine.SolveOptions
	opts.Random = c.Query("random") == "true"

	rng := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	result := engine.QuerySolve(req.toBoardData(), builder, opts, rng, nil)
	c.JSON(http.StatusOK, result)
}

func countSolutionsHandler(c *gin.Context) {
	var req struct {
		boardDataRequest
		MaxSolutions int `json:"maxSolutions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maxSolutions := req.MaxSolutions
	if maxSolutions <= 0 {
		maxSolutions = cfg.DefaultMaxSolutions
	}

	result := engine.QueryCountSolutions(req.toBoardData(), builder, engine.CountOptions{MaxSolutions: maxSolutions}, nil)
	c.JSON(http.StatusOK, result)
}

func trueCandidatesHandler(c *gin.Context) {
	var req struct {
		boardDataRequest
		MaxSolutionsPerCandidate int `json:"maxSolutionsPerCandidate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := engine.TrueCandidatesOptions{MaxSolutionsPerCandidate: req.MaxSolutionsPerCandidate}
	result := engine.QueryTrueCandidates(req.toBoardData(), builder, opts, nil)
	c.JSON(http.StatusOK, result)
}

// sessionStore holds the caller-retained boards behind the step/
// logicalSolve queries; this demo transport is the simplest possible host.
type sessionStore struct {
	mu     sync.RWMutex
	boards map[string]*engine.Board
}

var sessions = &sessionStore{
	boards: make(map[string]*engine.Board),
}

func newSessionID() string {
	buf := make([]byte, 16)
	_, _ = cryptorand.Read(buf)
	return hex.EncodeToString(buf)
}

func sessionStartHandler(c *gin.Context) {
	var req boardDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := engine.ApplyBoardData(req.toBoardData(), builder)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_board"})
		return
	}

	id := newSessionID()
	sessions.mu.Lock()
	sessions.boards[id] = b
	sessions.mu.Unlock()

	result := engine.QueryStep(b, true)
	c.JSON(http.StatusOK, gin.H{"sessionId": id, "result": result})
}

func sessionBoard(c *gin.Context) (*engine.Board, bool) {
	id := c.Param("id")
	sessions.mu.RLock()
	b, ok := sessions.boards[id]
	sessions.mu.RUnlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown_session"})
	}
	return b, ok
}

func sessionStepHandler(c *gin.Context) {
	b, ok := sessionBoard(c)
	if !ok {
		return
	}
	result := engine.QueryStep(b, false)
	c.JSON(http.StatusOK, result)
}

func sessionLogicalSolveHandler(c *gin.Context) {
	b, ok := sessionBoard(c)
	if !ok {
		return
	}
	result := engine.QueryLogicalSolve(b)
	c.JSON(http.StatusOK, result)
}
