package domain

import "strings"

// Voice is one of the narration voices exposed to the user. The speech
// endpoint expects the lowercase token, the UI shows the capitalized form.
type Voice string

const (
	VoiceAlloy   Voice = "Alloy"
	VoiceEcho    Voice = "Echo"
	VoiceFable   Voice = "Fable"
	VoiceOnyx    Voice = "Onyx"
	VoiceNova    Voice = "Nova"
	VoiceShimmer Voice = "Shimmer"
)

func AvailableVoices() []Voice {
	return []Voice{VoiceAlloy, VoiceEcho, VoiceFable, VoiceOnyx, VoiceNova, VoiceShimmer}
}

// Token returns the wire identifier the speech endpoint expects.
func (v Voice) Token() string {
	return strings.ToLower(string(v))
}

func (v Voice) Valid() bool {
	for _, known := range AvailableVoices() {
		if v == known {
			return true
		}
	}
	return false
}

// Font is a subtitle font style selectable by the user.
type Font string

const (
	FontArialBold  Font = "Arial-Bold"
	FontCourier    Font = "Courier"
	FontHelvetica  Font = "Helvetica"
	FontTimesRoman Font = "Times-Roman"
	FontVerdana    Font = "Verdana"
)

func AvailableFonts() []Font {
	return []Font{FontArialBold, FontCourier, FontHelvetica, FontTimesRoman, FontVerdana}
}

func (f Font) Valid() bool {
	for _, known := range AvailableFonts() {
		if f == known {
			return true
		}
	}
	return false
}

// GenerationRequest is one user submission. Immutable once built.
type GenerationRequest struct {
	Theme string
	Voice Voice
	Font  Font
}

// PromptResult is the outcome of a non-fatal text stage. When the text
// endpoint fails the stage degrades instead of aborting: Text carries the
// fallback value and Fallback is set.
type PromptResult struct {
	Text     string
	Fallback bool
}

// StoryPlan is the frozen output of the three text stages. Segments holds the
// non-blank story beats, at most five. RawLines preserves the undivided model
// output lines (blanks included) because subtitle timing divides the video
// duration across raw lines, not filtered segments.
type StoryPlan struct {
	EnhancedPrompt  string
	StyleDescriptor string
	Segments        []string
	RawLines        []string
}

// ImageAsset is one generated image, in segment order.
type ImageAsset struct {
	SegmentIndex  int
	SourceLocator string
}

// NarrationAsset is the single narration track for a run. DurationSeconds is
// the imposed policy duration of the whole video, not the measured length of
// the synthesized audio.
type NarrationAsset struct {
	SourceLocator   string
	DurationSeconds float64
}

// SubtitleCue is a timed subtitle line. Cue windows are contiguous and the
// last cue ends exactly at the video duration.
type SubtitleCue struct {
	StartSeconds float64
	EndSeconds   float64
	Text         string
}

// CompiledVideo is the terminal artifact of a run. RemoteLocator is empty
// unless the upload succeeded.
type CompiledVideo struct {
	RunID         string
	LocalPath     string
	RemoteLocator string
}

// PipelineStage identifies a pipeline stage in progress events and logs.
type PipelineStage string

const (
	StageEnhance   PipelineStage = "enhance"
	StageStyle     PipelineStage = "style"
	StageSegment   PipelineStage = "segment"
	StageImages    PipelineStage = "images"
	StageNarration PipelineStage = "narration"
	StageCompile   PipelineStage = "compile"
	StagePublish   PipelineStage = "publish"
)

// ProgressEvent is emitted by the pipeline as each stage starts or finishes.
type ProgressEvent struct {
	RunID   string        `json:"run_id"`
	Stage   PipelineStage `json:"stage"`
	Message string        `json:"message"`
	Done    bool          `json:"done"`
}
