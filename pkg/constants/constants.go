package constants

// MaxN is the largest board size the Mask type can represent: N candidate
// bits plus one given-flag bit must fit in a uint32.
const MaxN = 31

// DefaultClassicN is the board size used when a caller doesn't specify one.
const DefaultClassicN = 9

// MinGivens is the fewest givens a classic 9x9 puzzle can have and still
// admit a unique solution.
const MinGivens = 17

// Target givens by difficulty, for classic 9x9 carving.
var TargetGivens = map[string]int{
	"easy":   40,
	"medium": 34,
	"hard":   28,
}

// API version
const APIVersion = "0.1.0"

// Default ports
const DefaultPort = "8080"
