package game

// Board geometry and piece limits of the standard game.
const (
	NumNodes = 54
	NumEdges = 72

	MaxSettlements = 5
	MaxCities      = 4
	MaxRoads       = 15
)

// Rules holds the tunable parameters of a match.
type Rules struct {
	// VictoryPoints is the threshold that ends the match.
	VictoryPoints int
	// LargestArmySize is the minimum knights played to claim largest army.
	LargestArmySize int
	// BuildCandidates caps how many free nodes/edges are offered per build
	// type when enumerating legal actions, to keep action lists small.
	BuildCandidates int
}

// NewStandardRules returns the default rule set (10 points to win).
func NewStandardRules() Rules {
	return Rules{
		VictoryPoints:   10,
		LargestArmySize: 3,
		BuildCandidates: 3,
	}
}

// buildCost returns the resource cost of an action type, or false when the
// action is free.
func buildCost(t ActionType) ([NumResources]int, bool) {
	var cost [NumResources]int
	switch t {
	case BuildRoad:
		cost[Wood], cost[Brick] = 1, 1
	case BuildSettlement:
		cost[Wood], cost[Brick], cost[Sheep], cost[Wheat] = 1, 1, 1, 1
	case BuildCity:
		cost[Wheat], cost[Ore] = 2, 3
	case BuyDevCard:
		cost[Sheep], cost[Wheat], cost[Ore] = 1, 1, 1
	default:
		return cost, false
	}
	return cost, true
}
