package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryClosesReplacedSession(t *testing.T) {
	uc, messageRepo, _, _, _ := newChatFixture()
	registry := NewSessionRegistry()

	first := uc.NewSession(adminViewer())
	require.NoError(t, first.OpenConversation(context.Background(), "c1"))
	registry.Put("admin-1", first)

	second := uc.NewSession(adminViewer())
	registry.Put("admin-1", second)

	assert.Equal(t, 1, messageRepo.subscriptions[0].cancelled)

	got, ok := registry.Get("admin-1")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestRegistryRemoveOnlyDropsMatchingSession(t *testing.T) {
	uc, _, _, _, _ := newChatFixture()
	registry := NewSessionRegistry()

	current := uc.NewSession(adminViewer())
	stale := uc.NewSession(adminViewer())

	registry.Put("admin-1", current)
	registry.Remove("admin-1", stale)

	got, ok := registry.Get("admin-1")
	require.True(t, ok)
	assert.Same(t, current, got)
}
