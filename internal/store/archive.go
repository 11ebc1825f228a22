package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mark3labs/dnvquote/internal/form"
)

// SubmissionsDir is where submitted drafts are archived under the data dir.
const SubmissionsDir = "submissions"

// NewReference returns a fresh submission reference.
func NewReference() string {
	return uuid.NewString()
}

// Submission is the archived form of a submitted draft.
type Submission struct {
	Ref   string     `json:"ref"`
	Draft form.Draft `json:"draft"`
}

// WriteArchive writes the submitted draft to
// <dataDir>/submissions/<draft-name>-<ref>.json and returns the path.
func WriteArchive(dataDir string, d form.Draft, ref string) (string, error) {
	dir := filepath.Join(dataDir, SubmissionsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating submissions directory: %w", err)
	}

	data, err := json.MarshalIndent(Submission{Ref: ref, Draft: d}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding submission: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%s.json", DraftName(d.Identity.LegalEntityName), ref))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing submission: %w", err)
	}
	return path, nil
}
