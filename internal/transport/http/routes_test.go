package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sudoku-engine/pkg/config"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{
		Port:                "8080",
		DefaultMaxSolutions: 2,
	}
	RegisterRoutes(r, cfg)
	return r
}

var testPuzzle = []int{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

// puzzleBody renders a 9x9 givens array as the JSON request body the board
// endpoints accept.
func puzzleBody(t *testing.T, givens []int) []byte {
	t.Helper()
	grid := make([][]map[string]any, 9)
	for r := 0; r < 9; r++ {
		grid[r] = make([]map[string]any, 9)
		for c := 0; c < 9; c++ {
			cell := map[string]any{}
			if v := givens[r*9+c]; v != 0 {
				cell["value"] = v
				cell["given"] = true
			}
			grid[r][c] = cell
		}
	}
	body, err := json.Marshal(map[string]any{"size": 9, "grid": grid})
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	return body
}

func postJSON(t *testing.T, router *gin.Engine, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%v'", response["status"])
	}
}

func TestSolveHandler(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/solve", puzzleBody(t, testPuzzle))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Kind     string `json:"kind"`
		Solution []int  `json:"solution"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Kind != "solution" {
		t.Fatalf("Expected kind 'solution', got %q", response.Kind)
	}
	if len(response.Solution) != 81 {
		t.Fatalf("Expected 81 solution cells, got %d", len(response.Solution))
	}
	for i, v := range testPuzzle {
		if v != 0 && response.Solution[i] != v {
			t.Fatalf("Solution contradicts given at cell %d: %d vs %d", i, response.Solution[i], v)
		}
	}
}

func TestSolveHandlerRejectsBadJSON(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/solve", []byte("{not json"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
}

func TestCountSolutionsHandler(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/countSolutions", puzzleBody(t, testPuzzle))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Kind     string `json:"kind"`
		Count    int    `json:"count"`
		Complete bool   `json:"complete"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Kind != "count" || response.Count != 1 || !response.Complete {
		t.Fatalf("Expected a complete count of 1, got %+v", response)
	}
}

func TestTrueCandidatesHandler(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/trueCandidates", puzzleBody(t, testPuzzle))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Kind       string `json:"kind"`
		Candidates []struct {
			Given  bool  `json:"given"`
			Value  int   `json:"value"`
			Values []int `json:"values"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Kind != "truecandidates" {
		t.Fatalf("Expected kind 'truecandidates', got %q", response.Kind)
	}
	if len(response.Candidates) != 81 {
		t.Fatalf("Expected 81 candidate entries, got %d", len(response.Candidates))
	}
	// Single-solution puzzle: every cell narrows to its solved value.
	for i, cv := range response.Candidates {
		if !cv.Given {
			t.Fatalf("cell %d not narrowed to a single value: %+v", i, cv)
		}
	}
}

func TestSolveHandlerInvalidBoard(t *testing.T) {
	router := setupRouter()

	bad := make([]int, 81)
	bad[0] = 5
	bad[1] = 5
	w := postJSON(t, router, "/api/solve", puzzleBody(t, bad))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Kind != "invalid" {
		t.Fatalf("Expected kind 'invalid', got %q", response.Kind)
	}
}

func TestSessionStepFlow(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/session/start", puzzleBody(t, testPuzzle))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var started struct {
		SessionID string `json:"sessionId"`
		Result    struct {
			Desc    []string `json:"desc"`
			Changed bool     `json:"changed"`
		} `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &started); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if started.SessionID == "" {
		t.Fatal("Expected a session id")
	}
	if len(started.Result.Desc) != 1 || started.Result.Desc[0] != "Initial Candidates" {
		t.Fatalf("Expected 'Initial Candidates' first step, got %v", started.Result.Desc)
	}

	stepPath := fmt.Sprintf("/api/session/%s/step", started.SessionID)
	w = postJSON(t, router, stepPath, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var step struct {
		Desc    []string `json:"desc"`
		Changed bool     `json:"changed"`
		Invalid bool     `json:"invalid"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &step); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if !step.Changed || step.Invalid {
		t.Fatalf("Expected a productive step on a solvable puzzle, got %+v", step)
	}
}

func TestSessionLogicalSolve(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/session/start", puzzleBody(t, testPuzzle))
	var started struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &started); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	solvePath := fmt.Sprintf("/api/session/%s/logicalSolve", started.SessionID)
	w = postJSON(t, router, solvePath, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var result struct {
		Desc    []string `json:"desc"`
		Invalid bool     `json:"invalid"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if result.Invalid {
		t.Fatal("Did not expect a contradiction on a valid puzzle")
	}
	if len(result.Desc) == 0 {
		t.Fatal("Expected at least one deduction description")
	}
}

func TestSessionUnknownID(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/session/doesnotexist/step", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
}
