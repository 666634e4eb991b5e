package services

import (
	"strings"

	"story-video-service/domain"
)

// PlanCues divides totalDuration evenly across all raw story lines and
// returns a render cue for each non-blank line. Blank lines still occupy a
// time slot in the division even though they produce no cue, so the rendered
// cues keep the slot positions of their source lines.
//
// Windows are half-open [start, end), contiguous, and the final slot ends
// exactly at totalDuration.
func PlanCues(rawLines []string, totalDuration float64) []domain.SubtitleCue {
	if len(rawLines) == 0 || totalDuration <= 0 {
		return nil
	}

	perLine := totalDuration / float64(len(rawLines))

	cues := make([]domain.SubtitleCue, 0, len(rawLines))
	for i, line := range rawLines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		end := float64(i+1) * perLine
		if i == len(rawLines)-1 {
			end = totalDuration
		}
		cues = append(cues, domain.SubtitleCue{
			StartSeconds: float64(i) * perLine,
			EndSeconds:   end,
			Text:         strings.TrimSpace(line),
		})
	}
	return cues
}

// PerImageDuration is the equal split of the video across the image
// sequence: perImageDuration * imageCount == totalDuration.
func PerImageDuration(totalDuration float64, imageCount int) float64 {
	if imageCount == 0 {
		return 0
	}
	return totalDuration / float64(imageCount)
}
