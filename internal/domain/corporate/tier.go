package corporate

// Tier is a level-gated bracket of contract difficulty and reward
type Tier string

const (
	TierLocal         Tier = "LOCAL"
	TierRegional      Tier = "REGIONAL"
	TierNational      Tier = "NATIONAL"
	TierMultinational Tier = "MULTINATIONAL"
	TierGlobal        Tier = "GLOBAL"
)

// tierSpec gates a tier and shapes its offers
type tierSpec struct {
	minLevel       int
	minReputation  float64
	minRoutes      int
	minFleet       int
	minHubs        int // 0 = no hub requirement
	maxActive      int // simultaneous contracts in this tier
	multLo, multHi float64 // daily revenue as a fraction of the reference route
	durationDays   int
}

var tierTable = map[Tier]tierSpec{
	TierLocal:         {1, 20, 1, 1, 0, 1, 0.10, 0.20, 30},
	TierRegional:      {3, 35, 3, 3, 1, 1, 0.20, 0.35, 45},
	TierNational:      {5, 50, 6, 6, 1, 2, 0.30, 0.50, 60},
	TierMultinational: {7, 65, 10, 10, 2, 2, 0.45, 0.70, 75},
	TierGlobal:        {9, 80, 15, 15, 3, 3, 0.60, 1.00, 90},
}

// tierOrder lists tiers from entry level upward
var tierOrder = []Tier{TierLocal, TierRegional, TierNational, TierMultinational, TierGlobal}

// UnlockedTiers returns every tier the player's level has reached; lower
// tiers stay unlocked as the player climbs
func UnlockedTiers(level int) []Tier {
	var out []Tier
	for _, tier := range tierOrder {
		if level >= tierTable[tier].minLevel {
			out = append(out, tier)
		}
	}
	return out
}
