package game

import (
	"golang.org/x/exp/rand"
)

// playerState holds one seat's full holdings, hidden information included.
type playerState struct {
	resources     [NumResources]int
	devCards      [5]int // indexed by DevCard
	settlements   []int  // node ids
	cities        []int  // node ids
	roads         []int  // edge ids
	knightsPlayed int
}

func (p *playerState) copy() *playerState {
	c := *p
	c.settlements = append([]int(nil), p.settlements...)
	c.cities = append([]int(nil), p.cities...)
	c.roads = append([]int(nil), p.roads...)
	return &c
}

func (p *playerState) totalResources() int {
	total := 0
	for _, n := range p.resources {
		total += n
	}
	return total
}

func (p *playerState) totalDevCards() int {
	total := 0
	for _, n := range p.devCards {
		total += n
	}
	return total
}

func (p *playerState) canAfford(cost [NumResources]int) bool {
	for r, n := range cost {
		if p.resources[r] < n {
			return false
		}
	}
	return true
}

func (p *playerState) pay(cost [NumResources]int) {
	for r, n := range cost {
		p.resources[r] -= n
	}
}

// GameState represents the dynamic state of a simplified Settlers of Catan
// match. State is only ever mutated through Play, which returns a fresh copy.
type GameState struct {
	seats     []Seat
	current   int
	turn      int // decision points committed so far
	players   map[Seat]*playerState
	deck      []DevCard
	nodeOwner [NumNodes]int // index into seats, -1 when free
	edgeOwner [NumEdges]int
	rules     Rules
	rng       *rand.Rand
	lastRoll  int
	won       Seat
}

// NewStandard initializes a match for the given seats: two starting
// settlements and roads per seat, one resource of each kind in hand, and a
// first production roll for the opening actor.
func NewStandard(seats []Seat, rules Rules, seed uint64) *GameState {
	if len(seats) < 2 {
		panic("need at least two seats")
	}

	gs := &GameState{
		seats:   append([]Seat(nil), seats...),
		players: make(map[Seat]*playerState, len(seats)),
		rules:   rules,
		rng:     rand.New(rand.NewSource(seed)),
	}
	for i := range gs.nodeOwner {
		gs.nodeOwner[i] = -1
	}
	for i := range gs.edgeOwner {
		gs.edgeOwner[i] = -1
	}

	gs.deck = newDevDeck()
	gs.rng.Shuffle(len(gs.deck), func(i, j int) {
		gs.deck[i], gs.deck[j] = gs.deck[j], gs.deck[i]
	})

	// Spread starting settlements evenly around the board.
	stride := NumNodes / (2 * len(seats))
	for i, seat := range seats {
		p := &playerState{}
		for r := 0; r < NumResources; r++ {
			p.resources[r] = 1
		}
		for k := 0; k < 2; k++ {
			node := (2*i + k) * stride
			edge := node % NumEdges
			gs.nodeOwner[node] = i
			gs.edgeOwner[edge] = i
			p.settlements = append(p.settlements, node)
			p.roads = append(p.roads, edge)
		}
		gs.players[seat] = p
	}

	gs.rollAndProduce()
	return gs
}

// Copy returns a deep copy of the state. The rng is shared: dice sequences
// continue across copies so replays from a copy diverge, which is fine for
// the single-writer commit discipline this state is used under.
func (gs *GameState) Copy() *GameState {
	c := *gs
	c.seats = append([]Seat(nil), gs.seats...)
	c.deck = append([]DevCard(nil), gs.deck...)
	c.players = make(map[Seat]*playerState, len(gs.players))
	for seat, p := range gs.players {
		c.players[seat] = p.copy()
	}
	return &c
}

// CurrentActor returns the seat whose decision point it is.
func (gs *GameState) CurrentActor() Seat {
	return gs.seats[gs.current]
}

// Turn returns the number of actions committed so far.
func (gs *GameState) Turn() int {
	return gs.turn
}

// Seats returns the participating seats in play order.
func (gs *GameState) Seats() []Seat {
	return append([]Seat(nil), gs.seats...)
}

// Winner returns the winning seat once one has reached the victory threshold.
func (gs *GameState) Winner() (Seat, bool) {
	return gs.won, gs.won != ""
}

// LastRoll returns the most recent production roll.
func (gs *GameState) LastRoll() int {
	return gs.lastRoll
}

// DevDeckSize returns the number of development cards left in the deck.
func (gs *GameState) DevDeckSize() int {
	return len(gs.deck)
}

func (gs *GameState) hasSeat(seat Seat) bool {
	_, ok := gs.players[seat]
	return ok
}

// victoryPoints computes a seat's actual points, hidden VP cards included.
func (gs *GameState) victoryPoints(seat Seat) int {
	p := gs.players[seat]
	points := len(p.settlements) + 2*len(p.cities) + p.devCards[VictoryPointCard]
	if gs.hasLargestArmy(seat) {
		points += 2
	}
	return points
}

func (gs *GameState) publicVictoryPoints(seat Seat) int {
	return gs.victoryPoints(seat) - gs.players[seat].devCards[VictoryPointCard]
}

func (gs *GameState) hasLargestArmy(seat Seat) bool {
	own := gs.players[seat].knightsPlayed
	if own < gs.rules.LargestArmySize {
		return false
	}
	for other, p := range gs.players {
		if other != seat && p.knightsPlayed >= own {
			return false
		}
	}
	return true
}

// LegalActions enumerates every action the seat may commit right now.
// Returns nil for seats that are not the current actor. The current actor
// always has at least "end turn" available.
func (gs *GameState) LegalActions(seat Seat) []Action {
	if !gs.hasSeat(seat) || seat != gs.CurrentActor() || gs.won != "" {
		return nil
	}
	p := gs.players[seat]

	var actions []Action
	if cost, _ := buildCost(BuildRoad); p.canAfford(cost) && len(p.roads) < MaxRoads {
		for _, edge := range gs.freeEdges() {
			actions = append(actions, Action{Type: BuildRoad, Target: edge})
		}
	}
	if cost, _ := buildCost(BuildSettlement); p.canAfford(cost) && len(p.settlements) < MaxSettlements {
		for _, node := range gs.freeNodes() {
			actions = append(actions, Action{Type: BuildSettlement, Target: node})
		}
	}
	if cost, _ := buildCost(BuildCity); p.canAfford(cost) && len(p.cities) < MaxCities {
		limit := gs.rules.BuildCandidates
		for i, node := range p.settlements {
			if i >= limit {
				break
			}
			actions = append(actions, Action{Type: BuildCity, Target: node})
		}
	}
	if cost, _ := buildCost(BuyDevCard); p.canAfford(cost) && len(gs.deck) > 0 {
		actions = append(actions, Action{Type: BuyDevCard, Target: -1})
	}
	if p.devCards[Knight] > 0 {
		actions = append(actions, Action{Type: PlayKnight, Target: -1})
	}
	actions = append(actions, Action{Type: EndTurn, Target: -1})
	return actions
}

func (gs *GameState) freeNodes() []int {
	var nodes []int
	for node, owner := range gs.nodeOwner {
		if owner == -1 {
			nodes = append(nodes, node)
			if len(nodes) == gs.rules.BuildCandidates {
				break
			}
		}
	}
	return nodes
}

func (gs *GameState) freeEdges() []int {
	var edges []int
	for edge, owner := range gs.edgeOwner {
		if owner == -1 {
			edges = append(edges, edge)
			if len(edges) == gs.rules.BuildCandidates {
				break
			}
		}
	}
	return edges
}

// Play applies an action for the current actor and returns the new state.
// Legality is the caller's responsibility: the engine boundary validates
// against LegalActions before committing.
func (gs *GameState) Play(a Action) *GameState {
	next := gs.Copy()
	seat := next.CurrentActor()
	p := next.players[seat]

	switch a.Type {
	case BuildRoad:
		cost, _ := buildCost(a.Type)
		p.pay(cost)
		next.edgeOwner[a.Target] = next.current
		p.roads = append(p.roads, a.Target)
	case BuildSettlement:
		cost, _ := buildCost(a.Type)
		p.pay(cost)
		next.nodeOwner[a.Target] = next.current
		p.settlements = append(p.settlements, a.Target)
	case BuildCity:
		cost, _ := buildCost(a.Type)
		p.pay(cost)
		for i, node := range p.settlements {
			if node == a.Target {
				p.settlements = append(p.settlements[:i], p.settlements[i+1:]...)
				break
			}
		}
		p.cities = append(p.cities, a.Target)
	case BuyDevCard:
		cost, _ := buildCost(a.Type)
		p.pay(cost)
		p.devCards[next.deck[len(next.deck)-1]]++
		next.deck = next.deck[:len(next.deck)-1]
	case PlayKnight:
		p.devCards[Knight]--
		p.knightsPlayed++
	case EndTurn:
		next.current = (next.current + 1) % len(next.seats)
		next.rollAndProduce()
	}

	next.turn++
	if next.victoryPoints(seat) >= next.rules.VictoryPoints {
		next.won = seat
	}
	return next
}

// rollAndProduce rolls two dice and hands out production to every seat. A
// seven produces nothing. The resource kind is keyed off the building's node
// so different positions yield different income.
func (gs *GameState) rollAndProduce() {
	roll := gs.rng.Intn(6) + gs.rng.Intn(6) + 2
	gs.lastRoll = roll
	if roll == 7 {
		return
	}
	for _, p := range gs.players {
		for _, node := range p.settlements {
			p.resources[(node+roll)%NumResources]++
		}
		for _, node := range p.cities {
			p.resources[(node+roll)%NumResources] += 2
		}
	}
}
