package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tieubaoca/reporto-be/types"
)

func TestStreamChat_ChunksThenDone(t *testing.T) {
	ai := &stubAIService{chunks: []string{"Hello", " world"}}
	svc := NewChatService(ai, zaptest.NewLogger(t))

	events := slices.Collect(svc.StreamChat(context.Background(), "prompt"))

	require.Equal(t, []types.StreamEvent{
		{Content: "Hello"},
		{Content: " world"},
		{Done: true},
	}, events)
	require.Equal(t, []string{"prompt"}, ai.prompts)
}

func TestStreamChat_ErrorBeforeFirstChunk(t *testing.T) {
	ai := &stubAIService{openErr: errors.New("quota exceeded: key=abc")}
	svc := NewChatService(ai, zaptest.NewLogger(t))

	events := slices.Collect(svc.StreamChat(context.Background(), "prompt"))

	require.Equal(t, []types.StreamEvent{
		{Error: ChatErrorMessage, Done: true},
	}, events)
}

func TestStreamChat_ErrorMidStreamEndsWithErrorOnly(t *testing.T) {
	ai := &stubAIService{chunks: []string{"partial"}, streamErr: errors.New("connection reset")}
	svc := NewChatService(ai, zaptest.NewLogger(t))

	events := slices.Collect(svc.StreamChat(context.Background(), "prompt"))

	require.Equal(t, []types.StreamEvent{
		{Content: "partial"},
		{Error: ChatErrorMessage, Done: true},
	}, events)
}

func TestStreamChat_SkipsEmptyChunks(t *testing.T) {
	ai := &stubAIService{chunks: []string{"", "a", "", "b"}}
	svc := NewChatService(ai, zaptest.NewLogger(t))

	events := slices.Collect(svc.StreamChat(context.Background(), "prompt"))

	require.Equal(t, []types.StreamEvent{{Content: "a"}, {Content: "b"}, {Done: true}}, events)
}

func TestStreamChat_ConsumerStopHaltsProvider(t *testing.T) {
	ai := &stubAIService{chunks: []string{"one", "two", "three", "four"}}
	svc := NewChatService(ai, zaptest.NewLogger(t))

	var got []types.StreamEvent
	for ev := range svc.StreamChat(context.Background(), "prompt") {
		got = append(got, ev)
		if len(got) == 2 {
			break
		}
	}

	require.Equal(t, []types.StreamEvent{{Content: "one"}, {Content: "two"}}, got)
	assert.Equal(t, 2, ai.delivered, "provider must not be read past the refused chunk")
}

func TestStreamChat_SinglePass(t *testing.T) {
	ai := &stubAIService{chunks: []string{"x"}}
	svc := NewChatService(ai, zaptest.NewLogger(t))

	seq := svc.StreamChat(context.Background(), "prompt")
	first := slices.Collect(seq)
	second := slices.Collect(seq)

	require.Len(t, first, 2)
	require.Empty(t, second)
	require.Len(t, ai.prompts, 1)
}

func TestStreamChat_IsLazy(t *testing.T) {
	ai := &stubAIService{chunks: []string{"x"}}
	svc := NewChatService(ai, zaptest.NewLogger(t))

	_ = svc.StreamChat(context.Background(), "prompt")
	require.Empty(t, ai.prompts)
}
