package adapters

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"story-video-service/application/ports/outbound"
	"story-video-service/domain"
)

// fontPatterns maps the user-facing font catalog to fontconfig patterns for
// the drawtext filter.
var fontPatterns = map[domain.Font]string{
	domain.FontArialBold:  "Arial:style=Bold",
	domain.FontCourier:    "Courier",
	domain.FontHelvetica:  "Helvetica",
	domain.FontTimesRoman: "Times New Roman",
	domain.FontVerdana:    "Verdana",
}

type ffmpegVideoCompiler struct {
	logger  outbound.LoggerPort
	fetcher ContentFetcher
}

// NewFFmpegVideoCompiler builds the slideshow compiler. It shells out to
// ffmpeg/ffprobe, which must be on PATH.
func NewFFmpegVideoCompiler(logger outbound.LoggerPort, fetcher ContentFetcher) outbound.VideoCompilerPort {
	return &ffmpegVideoCompiler{
		logger:  logger,
		fetcher: fetcher,
	}
}

// Compile lays the images out as equal-duration frames, muxes the narration
// clipped or silence-padded to the imposed total duration, burns the
// subtitle cues in as bottom-centered text, and encodes H.264/AAC.
func (c *ffmpegVideoCompiler) Compile(ctx context.Context, req outbound.CompileVideoRequest) (string, error) {
	if len(req.Images) == 0 {
		return "", fmt.Errorf("cannot compile a video without images")
	}

	workDir := filepath.Dir(req.OutputPath)

	imagePaths, err := c.localizeImages(ctx, req.Images, workDir)
	if err != nil {
		return "", err
	}

	perImage := req.TotalDurationSeconds / float64(len(imagePaths))

	listPath := filepath.Join(workDir, "frames.txt")
	if err := os.WriteFile(listPath, []byte(BuildConcatList(imagePaths, perImage)), 0644); err != nil {
		return "", fmt.Errorf("failed to write frame list: %w", err)
	}

	c.logNarrationDivergence(ctx, req.NarrationPath, req.TotalDurationSeconds)

	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-i", req.NarrationPath,
		"-vf", BuildVideoFilter(req.Cues, req.Font),
		"-map", "0:v",
		"-map", "1:a",
		"-af", "apad",
		"-t", formatSeconds(req.TotalDurationSeconds),
		"-r", "24",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", "192k",
		req.OutputPath,
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		c.logger.ErrorWithFields(err, "ffmpeg encode failed", map[string]interface{}{
			"output": req.OutputPath,
			"stderr": tail(stderr.String(), 2048),
		})
		return "", fmt.Errorf("ffmpeg encode failed: %w", err)
	}

	return req.OutputPath, nil
}

// localizeImages ensures every image is a local file, downloading URL
// locators into the run directory.
func (c *ffmpegVideoCompiler) localizeImages(ctx context.Context, images []domain.ImageAsset, workDir string) ([]string, error) {
	paths := make([]string, 0, len(images))
	for _, image := range images {
		locator := image.SourceLocator
		if !strings.HasPrefix(locator, "http://") && !strings.HasPrefix(locator, "https://") {
			paths = append(paths, locator)
			continue
		}

		destPath := filepath.Join(workDir, fmt.Sprintf("image_%02d.png", image.SegmentIndex))
		if err := c.fetcher.Download(ctx, locator, destPath); err != nil {
			c.logger.ErrorWithFields(err, "failed to download generated image", map[string]interface{}{
				"segment_index": image.SegmentIndex,
			})
			return nil, fmt.Errorf("failed to download image %d: %w", image.SegmentIndex, err)
		}
		paths = append(paths, destPath)
	}
	return paths, nil
}

// logNarrationDivergence measures the real narration length and logs when it
// diverges from the imposed duration. The imposed duration always wins; the
// probe only makes truncation or dead air visible in the logs.
func (c *ffmpegVideoCompiler) logNarrationDivergence(ctx context.Context, narrationPath string, totalDuration float64) {
	measured, err := c.probeDuration(ctx, narrationPath)
	if err != nil {
		c.logger.Debug("could not probe narration duration")
		return
	}
	if math.Abs(measured-totalDuration) > 1 {
		c.logger.WarnWithFields("narration length diverges from the imposed video duration", map[string]interface{}{
			"narration_seconds": measured,
			"video_seconds":     totalDuration,
		})
	}
}

func (c *ffmpegVideoCompiler) probeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path)

	out, err := cmd.Output()
	if err != nil {
		return 0, err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe duration: %w", err)
	}
	return duration, nil
}

// BuildConcatList renders the concat demuxer input: each frame held for the
// equal split, with the final frame repeated so the demuxer honors the last
// duration directive.
func BuildConcatList(imagePaths []string, perImageDuration float64) string {
	var builder strings.Builder
	for _, path := range imagePaths {
		builder.WriteString("file '" + path + "'\n")
		builder.WriteString("duration " + formatSeconds(perImageDuration) + "\n")
	}
	if len(imagePaths) > 0 {
		builder.WriteString("file '" + imagePaths[len(imagePaths)-1] + "'\n")
	}
	return builder.String()
}

// BuildVideoFilter chains the frame normalization with one drawtext overlay
// per subtitle cue, each enabled only inside its time window.
func BuildVideoFilter(cues []domain.SubtitleCue, font domain.Font) string {
	filters := []string{
		"scale=1024:1024:force_original_aspect_ratio=decrease",
		"pad=1024:1024:(ow-iw)/2:(oh-ih)/2",
		"setsar=1",
	}

	pattern, ok := fontPatterns[font]
	if !ok {
		pattern = fontPatterns[domain.FontArialBold]
	}

	for _, cue := range cues {
		filters = append(filters, fmt.Sprintf(
			"drawtext=font='%s':text='%s':fontsize=24:fontcolor=white:borderw=2:bordercolor=black:x=(w-text_w)/2:y=h-text_h-40:enable='between(t\\,%s\\,%s)'",
			pattern,
			escapeDrawtextText(cue.Text),
			formatSeconds(cue.StartSeconds),
			formatSeconds(cue.EndSeconds),
		))
	}

	return strings.Join(filters, ",")
}

var drawtextEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\\\'`,
	`:`, `\:`,
	`,`, `\,`,
	`;`, `\;`,
	`%`, `\%`,
)

func escapeDrawtextText(text string) string {
	return drawtextEscaper.Replace(text)
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
