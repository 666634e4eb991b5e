package outbound

// RunWorkspacePort provides an isolated scratch directory per run so the
// fixed artifact names (voiceover.mp3, output_video.mp4) cannot collide
// across concurrent runs in one process.
type RunWorkspacePort interface {
	Create(runID string) (string, error)
	Remove(dir string) error
}
