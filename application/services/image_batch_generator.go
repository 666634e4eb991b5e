package services

import (
	"context"
	"fmt"
	"strings"

	"story-video-service/application/ports/inbound"
	"story-video-service/application/ports/outbound"
	"story-video-service/channel_utils"
	"story-video-service/domain"
)

// negativeInstruction is appended to every image prompt so the slideshow
// frames stay free of rendered text.
const negativeInstruction = "Make sure there is no text in the image."

type imageBatchGenerator struct {
	logger         outbound.LoggerPort
	imageGenerator outbound.ImageGeneratorPort
	workerPool     outbound.TaskDispatcher
	concurrency    int
}

// NewImageBatchGenerator builds the per-segment image stage. concurrency 1
// reproduces the original strictly sequential behavior; higher values fan
// out over the worker pool while keeping the fail-fast contract.
func NewImageBatchGenerator(logger outbound.LoggerPort, imageGenerator outbound.ImageGeneratorPort,
	workerPool outbound.TaskDispatcher, concurrency int) inbound.ImageBatchGeneratorPort {
	if concurrency < 1 {
		concurrency = 1
	}
	return &imageBatchGenerator{
		logger:         logger,
		imageGenerator: imageGenerator,
		workerPool:     workerPool,
		concurrency:    concurrency,
	}
}

func (g *imageBatchGenerator) Generate(ctx context.Context, plan domain.StoryPlan) ([]domain.ImageAsset, error) {
	if g.concurrency > 1 {
		return g.generateConcurrent(ctx, plan)
	}
	return g.generateSequential(ctx, plan)
}

// generateSequential issues one request per segment in order and stops on
// the first failure. Segments after the failing one are never attempted; the
// assets accumulated so far are returned alongside the error.
func (g *imageBatchGenerator) generateSequential(ctx context.Context, plan domain.StoryPlan) ([]domain.ImageAsset, error) {
	assets := make([]domain.ImageAsset, 0, len(plan.Segments))
	for i, segment := range plan.Segments {
		if err := ctx.Err(); err != nil {
			return assets, err
		}

		url, err := g.imageGenerator.Generate(ctx, BuildImagePrompt(plan.StyleDescriptor, segment))
		if err != nil {
			g.logger.ErrorWithFields(err, "image generation failed, stopping batch", map[string]interface{}{
				"segment_index": i,
				"segment":       segment,
			})
			return assets, fmt.Errorf("image generation failed for segment %d: %w", i, err)
		}

		assets = append(assets, domain.ImageAsset{SegmentIndex: i, SourceLocator: url})
	}
	return assets, nil
}

type indexedImageResult struct {
	index int
	asset domain.ImageAsset
	err   error
}

// generateConcurrent fans the segment requests out over the worker pool,
// bounded by the configured concurrency. On the first failure the remaining
// work is cancelled and only the unbroken run of successes before the lowest
// failed index is kept, matching the sequential prefix semantics.
func (g *imageBatchGenerator) generateConcurrent(ctx context.Context, plan domain.StoryPlan) ([]domain.ImageAsset, error) {
	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, g.concurrency)
	channels := make([]<-chan indexedImageResult, len(plan.Segments))

	for i, segment := range plan.Segments {
		i, segment := i, segment
		ch := make(chan indexedImageResult, 1)
		channels[i] = ch

		err := g.workerPool.Submit(func() {
			defer close(ch)
			select {
			case sem <- struct{}{}:
			case <-newCtx.Done():
				ch <- indexedImageResult{index: i, err: newCtx.Err()}
				return
			}
			defer func() { <-sem }()

			url, err := g.imageGenerator.Generate(newCtx, BuildImagePrompt(plan.StyleDescriptor, segment))
			if err != nil {
				cancel()
				ch <- indexedImageResult{index: i, err: err}
				return
			}
			ch <- indexedImageResult{index: i, asset: domain.ImageAsset{SegmentIndex: i, SourceLocator: url}}
		})
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to submit image task: %w", err)
		}
	}

	merged, err := channel_utils.MergeChannels(g.workerPool, channels...)
	if err != nil {
		return nil, err
	}

	results := make([]*indexedImageResult, len(plan.Segments))
	for res := range merged {
		res := res
		results[res.index] = &res
	}

	assets := make([]domain.ImageAsset, 0, len(plan.Segments))
	for i, res := range results {
		if res == nil || res.err != nil {
			var firstErr error
			if res != nil {
				firstErr = res.err
			}
			g.logger.ErrorWithFields(firstErr, "image generation failed, keeping prefix", map[string]interface{}{
				"segment_index": i,
			})
			return assets, fmt.Errorf("image generation failed for segment %d: %w", i, firstErr)
		}
		assets = append(assets, res.asset)
	}
	return assets, nil
}

// BuildImagePrompt concatenates the shared style descriptor, the segment
// text, and the fixed negative instruction.
func BuildImagePrompt(style string, segment string) string {
	parts := make([]string, 0, 3)
	if strings.TrimSpace(style) != "" {
		parts = append(parts, strings.TrimSpace(style))
	}
	parts = append(parts, strings.TrimSpace(segment), negativeInstruction)
	return strings.Join(parts, " ")
}
