package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriterCreatesTimestampedDir(t *testing.T) {
	base := t.TempDir()

	w, err := NewWriter(base)

	require.NoError(t, err)
	require.Equal(t, base, filepath.Dir(w.Dir()))
	info, err := os.Stat(w.Dir())
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestWriteTurnRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []TurnRecord{
		{
			Match: "m1",
			Turn:  0,
			TurnMetric: TurnMetric{
				Seat:       "red",
				Mode:       "structured",
				ActionID:   2,
				Action:     "end turn",
				Outcome:    "selected",
				QueryCalls: 3,
				Duration:   250 * time.Millisecond,
			},
		},
	}
	require.NoError(t, w.WriteTurnRecords(records))

	rows := readCSV(t, filepath.Join(w.Dir(), "turns.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"match", "turn", "seat", "mode", "action_id", "action", "outcome", "query_calls", "duration"}, rows[0])
	require.Equal(t, []string{"m1", "0", "red", "structured", "2", "end turn", "selected", "3", "250ms"}, rows[1])
}

func TestWriteMatchAndSeatRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	start := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Minute)
	require.NoError(t, w.WriteMatchRecords([]MatchRecord{{
		Match:     "m1",
		Outcome:   "won",
		Winner:    "red",
		Turns:     42,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}}))
	require.NoError(t, w.WriteSeatRecords([]SeatRecord{
		{Seat: "red", Agent: "openrouter", Mode: "structured", Model: "test/model"},
	}))

	matchRows := readCSV(t, filepath.Join(w.Dir(), "matches.csv"))
	require.Len(t, matchRows, 2)
	require.Equal(t, "won", matchRows[1][1])
	require.Equal(t, "42", matchRows[1][3])

	seatRows := readCSV(t, filepath.Join(w.Dir(), "seats.csv"))
	require.Len(t, seatRows, 2)
	require.Equal(t, []string{"red", "openrouter", "structured", "test/model"}, seatRows[1])
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.RecordTurn(TurnRecord{Match: "m1", Turn: 0})
	c.RecordTurn(TurnRecord{Match: "m1", Turn: 1})
	c.RecordMatch(MatchRecord{Match: "m1", Outcome: "draw"})

	require.Len(t, c.TurnRecords(), 2)
	require.Len(t, c.MatchRecords(), 1)

	dummy := NewDummyCollector()
	dummy.RecordTurn(TurnRecord{Match: "m1"})
	require.Empty(t, dummy.TurnRecords())
}
