package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"story-video-service/application/ports/outbound"
)

const runDirPrefix = "story-video-"

type scratchWorkspace struct {
	logger  outbound.LoggerPort
	baseDir string
}

// NewScratchWorkspace manages per-run scratch directories under baseDir. The
// fixed artifact names live inside a run directory, so concurrent runs never
// share files.
func NewScratchWorkspace(logger outbound.LoggerPort, baseDir string) outbound.RunWorkspacePort {
	return &scratchWorkspace{
		logger:  logger,
		baseDir: baseDir,
	}
}

func (w *scratchWorkspace) Create(runID string) (string, error) {
	dir := filepath.Join(w.baseDir, runDirPrefix+runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}
	return dir, nil
}

func (w *scratchWorkspace) Remove(dir string) error {
	// Refuse to delete anything outside our own run directories.
	if !strings.HasPrefix(filepath.Base(dir), runDirPrefix) {
		return fmt.Errorf("refusing to remove non-workspace directory: %s", dir)
	}
	return os.RemoveAll(dir)
}
