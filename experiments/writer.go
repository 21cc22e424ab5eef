package experiments

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	setup.Duration = setup.EndTime.Sub(setup.StartTime)

	setupPath := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(setupPath)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WriteMetrics(game int, metrics GameMetrics) error {
	filename := fmt.Sprintf("game%d.csv", game)
	metricsPath := filepath.Join(w.baseDir, filename)

	f, err := os.Create(metricsPath)
	if err != nil {
		return fmt.Errorf("failed to create metrics file for game %d: %w", game, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"step", "player", "row", "col", "hash", "duration", "depth", "nodes", "cutoffs", "timedOut"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write metrics header: %w", err)
	}

	for _, moveMetric := range metrics {
		record := []string{
			strconv.Itoa(moveMetric.Step),
			moveMetric.Player.String(),
			strconv.Itoa(moveMetric.Move.Row),
			strconv.Itoa(moveMetric.Move.Col),
			strconv.FormatUint(moveMetric.Hash, 16),
			moveMetric.Duration.String(),
			strconv.Itoa(moveMetric.Depth),
			strconv.FormatInt(moveMetric.Nodes, 10),
			strconv.FormatInt(moveMetric.Cutoffs, 10),
			strconv.FormatBool(moveMetric.TimedOut),
		}
		err := writer.Write(record)
		if err != nil {
			return fmt.Errorf("failed to write metric: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush metrics: %w", err)
	}
	return nil
}
