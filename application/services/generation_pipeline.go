package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"story-video-service/application/ports/inbound"
	"story-video-service/application/ports/outbound"
	"story-video-service/domain"
)

// Fixed artifact names inside the per-run scratch directory.
const (
	NarrationFileName = "voiceover.mp3"
	VideoFileName     = "output_video.mp4"
)

var (
	// ErrEmptyTheme is returned before any network call when the theme is
	// blank after trimming.
	ErrEmptyTheme = errors.New("theme must not be empty")
	// ErrUnknownVoice is returned for a voice outside the fixed catalog.
	ErrUnknownVoice = errors.New("unknown narrator voice")
	// ErrUnknownFont is returned for a font outside the fixed catalog.
	ErrUnknownFont = errors.New("unknown subtitle font")
	// ErrNoUsableSegments is returned when the segmenter yields zero
	// non-blank lines; no image, speech, or video work is attempted.
	ErrNoUsableSegments = errors.New("story segmentation produced no usable segments")
)

type generationPipeline struct {
	logger         outbound.LoggerPort
	enhancer       inbound.PromptEnhancerPort
	styleExtractor inbound.StyleExtractorPort
	segmenter      inbound.StorySegmenterPort
	imageBatch     inbound.ImageBatchGeneratorPort
	narration      inbound.NarrationGeneratorPort
	compiler       outbound.VideoCompilerPort
	publisher      outbound.VideoPublisherPort
	workspace      outbound.RunWorkspacePort
	totalDuration  float64
}

// NewGenerationPipeline wires the five stages. publisher may be nil, in
// which case the compiled video stays local only.
func NewGenerationPipeline(
	logger outbound.LoggerPort,
	enhancer inbound.PromptEnhancerPort,
	styleExtractor inbound.StyleExtractorPort,
	segmenter inbound.StorySegmenterPort,
	imageBatch inbound.ImageBatchGeneratorPort,
	narration inbound.NarrationGeneratorPort,
	compiler outbound.VideoCompilerPort,
	publisher outbound.VideoPublisherPort,
	workspace outbound.RunWorkspacePort,
	totalDuration float64) inbound.GenerationPipelinePort {
	return &generationPipeline{
		logger:         logger,
		enhancer:       enhancer,
		styleExtractor: styleExtractor,
		segmenter:      segmenter,
		imageBatch:     imageBatch,
		narration:      narration,
		compiler:       compiler,
		publisher:      publisher,
		workspace:      workspace,
		totalDuration:  totalDuration,
	}
}

func (p *generationPipeline) Generate(ctx context.Context, params inbound.StartGenerationParams) (*domain.CompiledVideo, error) {
	request := params.Request

	theme := strings.TrimSpace(request.Theme)
	if theme == "" {
		return nil, ErrEmptyTheme
	}
	if !request.Voice.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVoice, request.Voice)
	}
	if !request.Font.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, request.Font)
	}

	runID := params.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	report := params.Progress
	if report == nil {
		report = func(domain.ProgressEvent) {}
	}

	runDir, err := p.workspace.Create(runID)
	if err != nil {
		p.logger.Error(err, "failed to create run workspace")
		return nil, fmt.Errorf("failed to create run workspace: %w", err)
	}

	report(domain.ProgressEvent{RunID: runID, Stage: domain.StageEnhance, Message: "Enhancing your prompt..."})
	enhanced := p.enhancer.Enhance(ctx, theme)
	if enhanced.Fallback {
		p.logger.Warn("prompt enhancement degraded, using the original theme")
	}

	report(domain.ProgressEvent{RunID: runID, Stage: domain.StageStyle, Message: "Extracting a visual style..."})
	style := p.styleExtractor.Extract(ctx, enhanced.Text)

	report(domain.ProgressEvent{RunID: runID, Stage: domain.StageSegment, Message: "Generating story segments..."})
	rawLines := p.segmenter.Segment(ctx, enhanced.Text)
	segments := FilterSegments(rawLines)
	if len(segments) == 0 {
		if removeErr := p.workspace.Remove(runDir); removeErr != nil {
			p.logger.Error(removeErr, "failed to remove run workspace")
		}
		return nil, ErrNoUsableSegments
	}

	plan := domain.StoryPlan{
		EnhancedPrompt:  enhanced.Text,
		StyleDescriptor: style.Text,
		Segments:        segments,
		RawLines:        rawLines,
	}
	p.logger.InfoWithFields("story plan frozen", map[string]interface{}{
		"run_id":   runID,
		"segments": len(plan.Segments),
		"degraded": enhanced.Fallback || style.Fallback,
	})

	report(domain.ProgressEvent{RunID: runID, Stage: domain.StageImages, Message: "Generating images..."})
	images, imagesErr := p.imageBatch.Generate(ctx, plan)
	if len(images) == 0 {
		return nil, fmt.Errorf("no images were generated: %w", imagesErr)
	}
	if imagesErr != nil {
		p.logger.WarnWithFields("continuing with a partial image set", map[string]interface{}{
			"run_id": runID,
			"images": len(images),
			"error":  imagesErr.Error(),
		})
	}

	report(domain.ProgressEvent{RunID: runID, Stage: domain.StageNarration, Message: "Generating voiceover..."})
	narration, err := p.narration.Generate(ctx, inbound.GenerateNarrationParams{
		Segments:   plan.Segments,
		Voice:      request.Voice,
		OutputPath: filepath.Join(runDir, NarrationFileName),
	})
	if err != nil {
		return nil, err
	}

	report(domain.ProgressEvent{RunID: runID, Stage: domain.StageCompile, Message: "Compiling video..."})
	cues := PlanCues(plan.RawLines, p.totalDuration)
	localPath, err := p.compiler.Compile(ctx, outbound.CompileVideoRequest{
		Images:               images,
		NarrationPath:        narration.SourceLocator,
		Cues:                 cues,
		Font:                 request.Font,
		TotalDurationSeconds: p.totalDuration,
		OutputPath:           filepath.Join(runDir, VideoFileName),
	})
	if err != nil {
		p.logger.Error(err, "video compilation failed")
		return nil, fmt.Errorf("video compilation failed: %w", err)
	}

	video := &domain.CompiledVideo{RunID: runID, LocalPath: localPath}

	if p.publisher != nil {
		report(domain.ProgressEvent{RunID: runID, Stage: domain.StagePublish, Message: "Uploading video..."})
		published, err := p.publisher.Publish(ctx, outbound.PublishVideoRequest{
			LocalPath: localPath,
			RunID:     runID,
		})
		if err != nil {
			// Upload failure never invalidates the local video.
			p.logger.Error(err, "video upload failed, keeping local file")
		} else {
			video.RemoteLocator = published.URL
		}
	}

	report(domain.ProgressEvent{RunID: runID, Stage: domain.StagePublish, Message: "Video successfully created!", Done: true})
	return video, nil
}
