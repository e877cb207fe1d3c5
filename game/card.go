package game

// Resource represents one of the five tradeable resource kinds.
type Resource int

const (
	Wood Resource = iota
	Brick
	Sheep
	Wheat
	Ore
)

// NumResources is the number of distinct resource kinds.
const NumResources = 5

func (r Resource) String() string {
	switch r {
	case Wood:
		return "wood"
	case Brick:
		return "brick"
	case Sheep:
		return "sheep"
	case Wheat:
		return "wheat"
	case Ore:
		return "ore"
	default:
		return "unknown"
	}
}

// DevCard represents a development card kind. Card identities in a hand are
// hidden information: opponents only ever learn the total count.
type DevCard int

const (
	Knight DevCard = iota
	YearOfPlenty
	Monopoly
	RoadBuilding
	VictoryPointCard
)

func (c DevCard) String() string {
	switch c {
	case Knight:
		return "knight"
	case YearOfPlenty:
		return "year_of_plenty"
	case Monopoly:
		return "monopoly"
	case RoadBuilding:
		return "road_building"
	case VictoryPointCard:
		return "victory_point"
	default:
		return "unknown"
	}
}

// newDevDeck returns the standard 25-card development deck in a fixed order.
// The deck is shuffled by the state constructor.
func newDevDeck() []DevCard {
	deck := make([]DevCard, 0, 25)
	for i := 0; i < 14; i++ {
		deck = append(deck, Knight)
	}
	for i := 0; i < 5; i++ {
		deck = append(deck, VictoryPointCard)
	}
	for i := 0; i < 2; i++ {
		deck = append(deck, YearOfPlenty, Monopoly, RoadBuilding)
	}
	return deck
}
