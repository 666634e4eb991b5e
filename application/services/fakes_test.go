package services

import (
	"context"
	"errors"
	"sync"

	"story-video-service/application/ports/outbound"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                       {}
func (nopLogger) InfoWithFields(string, map[string]interface{})     {}
func (nopLogger) Error(error, string)                               {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                      {}
func (nopLogger) DebugWithFields(string, map[string]interface{})    {}
func (nopLogger) Warn(string)                                       {}
func (nopLogger) WarnWithFields(string, map[string]interface{})     {}

// goDispatcher runs each task on its own goroutine, standing in for the
// ants pool.
type goDispatcher struct{}

func (goDispatcher) Submit(task func()) error {
	go task()
	return nil
}

var errGenerator = errors.New("generator unavailable")

// scriptedTextGenerator answers Complete calls from a fixed script and
// records every message it receives.
type scriptedTextGenerator struct {
	mu       sync.Mutex
	script   []textReply
	messages []string
}

type textReply struct {
	text string
	err  error
}

func (g *scriptedTextGenerator) Complete(_ context.Context, message string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.messages = append(g.messages, message)
	if len(g.script) == 0 {
		return "", errGenerator
	}
	reply := g.script[0]
	g.script = g.script[1:]
	return reply.text, reply.err
}

// fakeImageGenerator returns a URL per prompt, failing at the configured
// call index (-1 never fails). It records prompts in call order.
type fakeImageGenerator struct {
	mu      sync.Mutex
	failAt  int
	prompts []string
}

func (g *fakeImageGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	call := len(g.prompts)
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()
	if g.failAt >= 0 && call == g.failAt {
		return "", errGenerator
	}
	return "https://images.example/" + prompt[:min(8, len(prompt))], nil
}

func (g *fakeImageGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// fakeSynthesizer records the request and returns canned audio bytes.
type fakeSynthesizer struct {
	mu    sync.Mutex
	fail  bool
	calls []outbound.SynthesizeSpeechRequest
}

func (s *fakeSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()
	if s.fail {
		return nil, errGenerator
	}
	return []byte("mp3-bytes"), nil
}

// fakeCompiler records the compile request and pretends to encode.
type fakeCompiler struct {
	fail bool
	reqs []outbound.CompileVideoRequest
}

func (c *fakeCompiler) Compile(_ context.Context, req outbound.CompileVideoRequest) (string, error) {
	c.reqs = append(c.reqs, req)
	if c.fail {
		return "", errGenerator
	}
	return req.OutputPath, nil
}

// fakePublisher records uploads; fail makes Publish error.
type fakePublisher struct {
	fail    bool
	reqs    []outbound.PublishVideoRequest
	deleted []string
}

func (p *fakePublisher) Publish(_ context.Context, req outbound.PublishVideoRequest) (*outbound.PublishVideoResponse, error) {
	p.reqs = append(p.reqs, req)
	if p.fail {
		return nil, errGenerator
	}
	return &outbound.PublishVideoResponse{
		Key:    "generated_files/" + req.RunID,
		URL:    "https://bucket.s3.us-east-1.amazonaws.com/generated_files/" + req.RunID,
		Region: "us-east-1",
	}, nil
}

func (p *fakePublisher) Delete(_ context.Context, key string) error {
	p.deleted = append(p.deleted, key)
	return nil
}

// fakeWorkspace hands out subdirectories of a test temp dir.
type fakeWorkspace struct {
	baseDir string
	created []string
	removed []string
}

func (w *fakeWorkspace) Create(runID string) (string, error) {
	dir := w.baseDir
	w.created = append(w.created, dir)
	return dir, nil
}

func (w *fakeWorkspace) Remove(dir string) error {
	w.removed = append(w.removed, dir)
	return nil
}
