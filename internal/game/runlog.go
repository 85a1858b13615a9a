package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// RunLog summarizes one scene run.
type RunLog struct {
	Started    time.Time      `json:"started"`
	Seconds    float64        `json:"seconds"`
	Ticks      uint64         `json:"ticks"`
	Talks      map[string]int `json:"talks"`
	Dismissals int            `json:"dismissals"`
}

// RunLog reports the hosted scene's summary so far.
func (g *Game) RunLog() RunLog {
	st := g.scene.Stats()
	return RunLog{
		Started:    g.started,
		Seconds:    g.scene.Elapsed().Seconds(),
		Ticks:      g.scene.Ticks(),
		Talks:      st.Talks,
		Dismissals: st.Dismissals,
	}
}

// SaveRunLog appends the run as a single JSON line to runs.jsonl.
func SaveRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// runLogDir returns the directory where run logs are stored.
// Uses the XDG data directory: $XDG_DATA_HOME/district9,
// defaulting to ~/.local/share/district9.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "district9"), nil
}
