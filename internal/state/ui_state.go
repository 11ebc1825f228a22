package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/mark3labs/dnvquote/internal/review"
)

// FileName is the UI state file inside the data directory.
const FileName = "ui-state.json"

// UIState holds UI preferences that carry across runs.
type UIState struct {
	Review ReviewState `json:"review"`
}

// ReviewState remembers which review sections the user collapsed.
type ReviewState struct {
	Collapsed []string `json:"collapsed"`
}

// DefaultUIState has every review section expanded.
func DefaultUIState() *UIState {
	return &UIState{}
}

// Outline turns the saved review state into a review outline.
func (s *UIState) Outline() review.Outline {
	return review.NewOutline(s.Review.Collapsed...)
}

// SetOutline records the collapsed sections of o.
func (s *UIState) SetOutline(o review.Outline) {
	s.Review.Collapsed = o.Collapsed()
}

// Load reads <dataDir>/ui-state.json, falling back to defaults when the
// file is missing or unreadable.
func Load(dataDir string) *UIState {
	data, err := os.ReadFile(filepath.Join(dataDir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultUIState()
	}
	if err != nil {
		logger.Warn("Failed to read UI state file: %v", err)
		return DefaultUIState()
	}

	var state UIState
	if err := json.Unmarshal(data, &state); err != nil {
		logger.Warn("Failed to parse UI state JSON: %v", err)
		return DefaultUIState()
	}
	return &state
}

// Save writes the UI state, creating dataDir if needed.
func Save(dataDir string, state *UIState) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling UI state: %w", err)
	}

	path := filepath.Join(dataDir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing UI state file: %w", err)
	}

	logger.Debug("UI state saved to %s", path)
	return nil
}
