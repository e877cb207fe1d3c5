package game

import "fmt"

// Hand is the full view of one seat's holdings. Only ever shown to the seat
// that owns it.
type Hand struct {
	Resources       map[string]int `json:"resources"`
	TotalResources  int            `json:"total_resources"`
	DevCards        map[string]int `json:"development_cards"`
	TotalDevCards   int            `json:"total_development_cards"`
	Settlements     int            `json:"settlements_built"`
	Cities          int            `json:"cities_built"`
	Roads           int            `json:"roads_built"`
	SettlementsLeft int            `json:"settlements_available"`
	CitiesLeft      int            `json:"cities_available"`
	RoadsLeft       int            `json:"roads_available"`
	KnightsPlayed   int            `json:"knights_played"`
	VictoryPoints   int            `json:"victory_points"`
	PublicPoints    int            `json:"public_victory_points"`
	HasLargestArmy  bool           `json:"has_largest_army"`
}

// Public is the opponent-safe summary of a seat: aggregate counts only,
// never card identities or resource composition.
type Public struct {
	VictoryPoints  int  `json:"victory_points"`
	ResourceCount  int  `json:"resource_count"`
	DevCardCount   int  `json:"development_card_count"`
	Settlements    int  `json:"settlements"`
	Cities         int  `json:"cities"`
	Roads          int  `json:"roads"`
	KnightsPlayed  int  `json:"knights_played"`
	HasLargestArmy bool `json:"has_largest_army"`
}

// HandView extracts the owner's full view for a seat.
func (gs *GameState) HandView(seat Seat) (Hand, error) {
	p, ok := gs.players[seat]
	if !ok {
		return Hand{}, fmt.Errorf("no such seat %q", seat)
	}

	resources := make(map[string]int, NumResources)
	for r := Resource(0); r < NumResources; r++ {
		resources[r.String()] = p.resources[r]
	}
	devCards := make(map[string]int, len(p.devCards))
	for c := DevCard(0); int(c) < len(p.devCards); c++ {
		devCards[c.String()] = p.devCards[c]
	}

	return Hand{
		Resources:       resources,
		TotalResources:  p.totalResources(),
		DevCards:        devCards,
		TotalDevCards:   p.totalDevCards(),
		Settlements:     len(p.settlements),
		Cities:          len(p.cities),
		Roads:           len(p.roads),
		SettlementsLeft: MaxSettlements - len(p.settlements),
		CitiesLeft:      MaxCities - len(p.cities),
		RoadsLeft:       MaxRoads - len(p.roads),
		KnightsPlayed:   p.knightsPlayed,
		VictoryPoints:   gs.victoryPoints(seat),
		PublicPoints:    gs.publicVictoryPoints(seat),
		HasLargestArmy:  gs.hasLargestArmy(seat),
	}, nil
}

// PublicView extracts the opponent-safe summary for a seat.
func (gs *GameState) PublicView(seat Seat) (Public, error) {
	p, ok := gs.players[seat]
	if !ok {
		return Public{}, fmt.Errorf("no such seat %q", seat)
	}
	return Public{
		VictoryPoints:  gs.publicVictoryPoints(seat),
		ResourceCount:  p.totalResources(),
		DevCardCount:   p.totalDevCards(),
		Settlements:    len(p.settlements),
		Cities:         len(p.cities),
		Roads:          len(p.roads),
		KnightsPlayed:  p.knightsPlayed,
		HasLargestArmy: gs.hasLargestArmy(seat),
	}, nil
}
