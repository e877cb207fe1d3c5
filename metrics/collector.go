package metrics

import (
	"sync"
	"time"

	"github.com/infoFiets/llm-catan-arena/game"
)

// TurnMetric captures how one decision point resolved.
type TurnMetric struct {
	Seat       game.Seat
	Mode       string
	ActionID   int
	Action     string
	Outcome    string // selected, fallback or timeout
	QueryCalls int
	Duration   time.Duration
}

// TurnRecord ties a turn metric to its match and turn number.
type TurnRecord struct {
	Match string
	Turn  int
	TurnMetric
}

// MatchRecord summarizes one finished match.
type MatchRecord struct {
	Match     string
	Outcome   string // won, draw or aborted
	Winner    string
	Turns     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// SeatRecord describes one seat's configuration for the run manifest.
type SeatRecord struct {
	Seat  string
	Agent string
	Mode  string
	Model string
}

type Collector interface {
	RecordTurn(TurnRecord)
	RecordMatch(MatchRecord)
	TurnRecords() []TurnRecord
	MatchRecords() []MatchRecord
}

type collector struct {
	mu      sync.Mutex
	turns   []TurnRecord
	matches []MatchRecord
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) RecordTurn(r TurnRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, r)
}

func (c *collector) RecordMatch(r MatchRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.matches = append(c.matches, r)
}

func (c *collector) TurnRecords() []TurnRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]TurnRecord(nil), c.turns...)
}

func (c *collector) MatchRecords() []MatchRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]MatchRecord(nil), c.matches...)
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) RecordTurn(r TurnRecord)     {}
func (c *dummyCollector) RecordMatch(r MatchRecord)   {}
func (c *dummyCollector) TurnRecords() []TurnRecord   { return nil }
func (c *dummyCollector) MatchRecords() []MatchRecord { return nil }
