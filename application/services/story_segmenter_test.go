package services

import (
	"context"
	"testing"
)

func TestStorySegmenter_TruncatesToFiveRawLines(t *testing.T) {
	generator := &scriptedTextGenerator{script: []textReply{
		{text: "one\ntwo\nthree\nfour\nfive\nsix\nseven"},
	}}
	segmenter := NewStorySegmenter(nopLogger{}, generator)

	lines := segmenter.Segment(context.Background(), "prompt")

	if len(lines) != 5 {
		t.Fatalf("expected 5 raw lines, got %d", len(lines))
	}
	if lines[4] != "five" {
		t.Fatalf("unexpected fifth line: %q", lines[4])
	}
}

func TestStorySegmenter_KeepsBlankLines(t *testing.T) {
	generator := &scriptedTextGenerator{script: []textReply{
		{text: "one\n\ntwo"},
	}}
	segmenter := NewStorySegmenter(nopLogger{}, generator)

	lines := segmenter.Segment(context.Background(), "prompt")

	if len(lines) != 3 {
		t.Fatalf("raw lines must keep blanks, got %v", lines)
	}
}

func TestStorySegmenter_FailureReturnsNoLines(t *testing.T) {
	generator := &scriptedTextGenerator{script: []textReply{
		{err: errGenerator},
	}}
	segmenter := NewStorySegmenter(nopLogger{}, generator)

	if lines := segmenter.Segment(context.Background(), "prompt"); len(lines) != 0 {
		t.Fatalf("expected no lines on failure, got %v", lines)
	}
}

func TestFilterSegments(t *testing.T) {
	filtered := FilterSegments([]string{"one", " ", "", "two", "three", "four", "five", "six"})

	if len(filtered) != 5 {
		t.Fatalf("expected filtering to re-truncate to 5, got %d", len(filtered))
	}
	if filtered[0] != "one" || filtered[1] != "two" {
		t.Fatalf("blank lines must be dropped in order, got %v", filtered)
	}
}

func TestFilterSegments_AllBlank(t *testing.T) {
	if filtered := FilterSegments([]string{"", "  ", "\t"}); len(filtered) != 0 {
		t.Fatalf("expected no segments, got %v", filtered)
	}
}
