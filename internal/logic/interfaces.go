package logic

import (
	"math/rand/v2"
	"time"

	"github.com/jonie-n/valodash-backend/internal/models"
)

// RandSource defines the random draws the generator needs.
// *rand.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
	Float64() float64
}

// MatchGenerator produces the match history for a uid that has none yet
type MatchGenerator interface {
	Generate(uid string) *models.UserMatchDocument
}

// globalRand forwards to the math/rand/v2 top-level functions, which are safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// Clock returns the current time. Swapped out in tests.
type Clock func() time.Time
