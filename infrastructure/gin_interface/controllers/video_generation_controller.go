package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"story-video-service/application/ports/inbound"
	"story-video-service/application/ports/outbound"
	"story-video-service/application/services"
	"story-video-service/domain"
	"story-video-service/infrastructure/gin_interface/dto"
	"story-video-service/middleware"
)

type VideoGenerationController interface {
	GenerateVideo(c *gin.Context)
	StreamVideoGeneration(c *gin.Context)
	DownloadVideo(c *gin.Context)
	ListVoices(c *gin.Context)
	ListFonts(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type videoGenerationController struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	pipeline   inbound.GenerationPipelinePort

	mu     sync.RWMutex
	videos map[string]string
}

func NewVideoGenerationController(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	pipeline inbound.GenerationPipelinePort) VideoGenerationController {
	return &videoGenerationController{
		logger:     logger,
		workerPool: workerPool,
		pipeline:   pipeline,
		videos:     make(map[string]string),
	}
}

// GenerateVideo runs the pipeline synchronously and answers with the final
// artifact locations.
func (v *videoGenerationController) GenerateVideo(c *gin.Context) {
	var request dto.GenerateVideoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runID := uuid.NewString()

	video, err := v.pipeline.Generate(c.Request.Context(), inbound.StartGenerationParams{
		RunID: runID,
		Request: domain.GenerationRequest{
			Theme: request.Theme,
			Voice: domain.Voice(request.Voice),
			Font:  domain.Font(request.Font),
		},
	})
	if err != nil {
		c.JSON(statusForPipelineError(err), gin.H{"error": err.Error()})
		return
	}

	v.rememberVideo(video)

	c.JSON(http.StatusOK, dto.GenerateVideoResponse{
		RunID:     video.RunID,
		VideoPath: "/videos/" + video.RunID,
		RemoteURL: video.RemoteLocator,
	})
}

// StreamVideoGeneration runs the pipeline on the worker pool and streams
// stage progress as server-sent events, ending with a result or error event.
func (v *videoGenerationController) StreamVideoGeneration(c *gin.Context) {
	var request dto.GenerateVideoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runID := uuid.NewString()

	type outcome struct {
		video *domain.CompiledVideo
		err   error
	}

	eventCh := make(chan domain.ProgressEvent, 16)
	doneCh := make(chan outcome, 1)

	newCtx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	err := v.workerPool.Submit(func() {
		video, err := v.pipeline.Generate(newCtx, inbound.StartGenerationParams{
			RunID: runID,
			Request: domain.GenerationRequest{
				Theme: request.Theme,
				Voice: domain.Voice(request.Voice),
				Font:  domain.Font(request.Font),
			},
			Progress: func(event domain.ProgressEvent) {
				select {
				case eventCh <- event:
				default:
				}
			},
		})
		doneCh <- outcome{video: video, err: err}
	})
	if err != nil {
		v.logger.Error(err, "failed to submit pipeline task")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation could not be scheduled"})
		return
	}

	// Heartbeats keep intermediaries from closing the stream during the
	// long image and encode stages.
	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case event := <-eventCh:
			c.SSEvent("progress", event)
			c.Writer.Flush()
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().UTC().Format(time.RFC3339))
			c.Writer.Flush()
		case res := <-doneCh:
			if res.err != nil {
				c.SSEvent("error", gin.H{"run_id": runID, "error": res.err.Error()})
				c.Writer.Flush()
				return
			}
			v.rememberVideo(res.video)
			c.SSEvent("result", dto.GenerateVideoResponse{
				RunID:     res.video.RunID,
				VideoPath: "/videos/" + res.video.RunID,
				RemoteURL: res.video.RemoteLocator,
			})
			c.Writer.Flush()
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

// DownloadVideo serves a compiled video produced earlier in this process.
func (v *videoGenerationController) DownloadVideo(c *gin.Context) {
	runID := c.Param("run_id")

	v.mu.RLock()
	localPath, ok := v.videos[runID]
	v.mu.RUnlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown video"})
		return
	}

	c.FileAttachment(localPath, services.VideoFileName)
}

func (v *videoGenerationController) ListVoices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"voices": domain.AvailableVoices()})
}

func (v *videoGenerationController) ListFonts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fonts": domain.AvailableFonts()})
}

func (v *videoGenerationController) RegisterRoutes(g *gin.Engine) {
	g.POST("/generate", v.GenerateVideo)
	g.POST("/generate/stream", middleware.SSEMiddleware(), v.StreamVideoGeneration)
	g.GET("/videos/:run_id", v.DownloadVideo)
	g.GET("/voices", v.ListVoices)
	g.GET("/fonts", v.ListFonts)
}

func (v *videoGenerationController) rememberVideo(video *domain.CompiledVideo) {
	v.mu.Lock()
	v.videos[video.RunID] = video.LocalPath
	v.mu.Unlock()
}

func statusForPipelineError(err error) int {
	switch {
	case errors.Is(err, services.ErrEmptyTheme),
		errors.Is(err, services.ErrUnknownVoice),
		errors.Is(err, services.ErrUnknownFont):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNoUsableSegments):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
