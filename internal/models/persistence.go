package models

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveDir is where sessions live. Overridden from config at startup.
var SaveDir = ".saves"

// Save writes the session state under SaveDir/name.
func (s *GameState) Save(name string) error {
	dir := filepath.Join(SaveDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "state.yaml"), data, 0644)
}

// LoadSession reads a previously saved run.
func LoadSession(name string) (*GameState, error) {
	dir := filepath.Join(SaveDir, name)

	data, err := os.ReadFile(filepath.Join(dir, "state.yaml"))
	if err != nil {
		return nil, err
	}
	var state GameState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.PurchaseCounts == nil {
		state.PurchaseCounts = map[string]int{}
	}
	if state.WeekSummary.Gains == nil {
		state.WeekSummary.Gains = map[string]float64{}
	}
	return &state, nil
}

// ListSessions returns the names of saved runs.
func ListSessions() ([]string, error) {
	if _, err := os.Stat(SaveDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(SaveDir)
	if err != nil {
		return nil, err
	}

	var sessions []string
	for _, entry := range entries {
		if entry.IsDir() {
			// state.yaml marks a valid session
			statePath := filepath.Join(SaveDir, entry.Name(), "state.yaml")
			if _, err := os.Stat(statePath); err == nil {
				sessions = append(sessions, entry.Name())
			}
		}
	}
	return sessions, nil
}
