package service

import (
	"context"
	"sync"

	"github.com/tieubaoca/reporto-be/types"
)

// stubAIService replays fixed chunks and errors, recording prompts.
type stubAIService struct {
	mu sync.Mutex

	chunks    []string
	streamErr error // returned after all chunks were delivered
	openErr   error // returned before any chunk

	text   string
	genErr error

	prompts   []string
	delivered int
}

func (s *stubAIService) ChatStream(_ context.Context, prompt string, handler types.StreamHandler) error {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if s.openErr != nil {
		return s.openErr
	}
	for _, chunk := range s.chunks {
		s.delivered++
		if err := handler(chunk); err != nil {
			return err
		}
	}
	return s.streamErr
}

func (s *stubAIService) Generate(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()
	return s.text, s.genErr
}

type stubExtractor struct {
	text  string
	err   error
	calls int
	data  []byte
}

func (s *stubExtractor) ExtractText(_ context.Context, data []byte) (string, error) {
	s.calls++
	s.data = data
	return s.text, s.err
}

func (s *stubAIService) recordedPrompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}
