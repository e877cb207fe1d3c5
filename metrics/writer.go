package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped run directory under outputDir and returns
// a writer bound to it.
func NewWriter(outputDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outputDir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the run directory records are written into.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSeatRecords(records []SeatRecord) error {
	path := filepath.Join(w.baseDir, "seats.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create seats file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"seat", "agent", "mode", "model"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write seats header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Seat,
			record.Agent,
			record.Mode,
			record.Model,
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write seat row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "matches.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create matches file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"match", "outcome", "winner", "turns", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write matches header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Match,
			record.Outcome,
			record.Winner,
			strconv.Itoa(record.Turns),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write match row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	path := filepath.Join(w.baseDir, "turns.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create turns file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"match", "turn", "seat", "mode", "action_id", "action", "outcome", "query_calls", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write turns header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Match,
			strconv.Itoa(record.Turn),
			string(record.Seat),
			record.Mode,
			strconv.Itoa(record.ActionID),
			record.Action,
			record.Outcome,
			strconv.Itoa(record.QueryCalls),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write turn row: %w", err)
		}
	}

	return nil
}
