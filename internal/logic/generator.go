package logic

import (
	"fmt"
	"math"
	"time"

	"github.com/jonie-n/valodash-backend/internal/models"
)

// Agents is the roster a match's agent is drawn from
var Agents = []string{
	"Brimstone", "Phoenix", "Sage", "Sova", "Viper", "Cypher", "Reyna", "Killjoy", "Breach",
	"Omen", "Jett", "Raze", "Skye", "Yoru", "Astra", "Kay/o", "Chamber", "Neon", "Fade",
	"Harbor", "Gekko", "Deadlock", "Iso", "Clove", "Vyse", "Tejo", "Waylay",
}

// Maps is the roster a match's map is drawn from
var Maps = []string{
	"Abyss", "Sunset", "Lotus", "Pearl", "Fracture", "Breeze", "Icebox", "Ascent",
	"Haven", "Bind", "Split", "Corrode",
}

// Stat bounds (exclusive upper bound for IntN)
const (
	maxKills   = 25
	maxDeaths  = 20
	maxAssists = 15
)

// headshotTier is one component of the headshot percentage mixture.
// A draw below cumulative selects the tier; the value is then uniform in [low, low+width).
type headshotTier struct {
	cumulative float64
	low        float64
	width      float64
}

// The third tier overlaps the second on [15,20). Dashboards built against this data expect it.
var headshotTiers = []headshotTier{
	{cumulative: 0.1, low: 5, width: 5},
	{cumulative: 0.4, low: 10, width: 10},
	{cumulative: 0.9, low: 15, width: 10},
	{cumulative: 1.0, low: 25, width: 15},
}

// Generator fabricates match histories
type Generator struct {
	rand RandSource
	now  Clock
}

// NewGenerator creates a generator drawing from src and dating matches relative to now.
// Nil arguments fall back to math/rand/v2 and time.Now.
func NewGenerator(src RandSource, now Clock) *Generator {
	if src == nil {
		src = globalRand{}
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{rand: src, now: now}
}

// DefaultGenerator returns a generator backed by the global random source and wall clock.
func DefaultGenerator() *Generator {
	return NewGenerator(nil, nil)
}

// Generate builds a fresh document of MatchesPerUser records for uid.
// Record 1 is dated now, each following record one day earlier.
func (g *Generator) Generate(uid string) *models.UserMatchDocument {
	now := g.now().UTC()
	matches := make([]models.MatchRecord, 0, models.MatchesPerUser)

	for i := 0; i < models.MatchesPerUser; i++ {
		matches = append(matches, models.MatchRecord{
			MatchID:            fmt.Sprintf("%s-match-%d", uid, i+1),
			Agent:              Agents[g.rand.IntN(len(Agents))],
			Map:                Maps[g.rand.IntN(len(Maps))],
			Kills:              g.rand.IntN(maxKills),
			Deaths:             g.rand.IntN(maxDeaths),
			Assists:            g.rand.IntN(maxAssists),
			Win:                g.rand.Float64() > 0.5,
			Date:               now.Add(-time.Duration(i) * 24 * time.Hour).Format(models.DateLayout),
			HeadshotPercentage: g.headshotRate(),
		})
	}

	return &models.UserMatchDocument{UID: uid, Matches: matches}
}

func (g *Generator) headshotRate() float64 {
	base := g.rand.Float64()
	tier := headshotTiers[len(headshotTiers)-1]
	for _, t := range headshotTiers {
		if base < t.cumulative {
			tier = t
			break
		}
	}
	return roundTenth(tier.low + g.rand.Float64()*tier.width)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
