package data

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewerSearchSupersedes(t *testing.T) {
	registry := NewSessionRegistry()

	first := registry.Begin(context.Background(), "client-1")
	second := registry.Begin(context.Background(), "client-1")
	defer second.End()

	assert.ErrorIs(t, first.Context().Err(), context.Canceled)
	assert.False(t, first.Current())
	assert.True(t, second.Current())

	_, err := Apply(first, "stale", nil)
	assert.ErrorIs(t, err, ErrSuperseded)

	value, err := Apply(second, "fresh", nil)
	assert.NoError(t, err)
	assert.Equal(t, "fresh", value)

	// Ending the old search leaves the new one in place.
	first.End()
	assert.True(t, second.Current())
}

func TestSearchesOfOtherClients(t *testing.T) {
	registry := NewSessionRegistry()

	a := registry.Begin(context.Background(), "client-a")
	b := registry.Begin(context.Background(), "client-b")
	defer a.End()
	defer b.End()

	assert.True(t, a.Current())
	assert.True(t, b.Current())
	assert.NoError(t, a.Context().Err())
}

func TestAnonymousSearch(t *testing.T) {
	registry := NewSessionRegistry()

	first := registry.Begin(context.Background(), "")
	second := registry.Begin(context.Background(), "")
	defer second.End()

	assert.True(t, first.Current())
	assert.NoError(t, first.Context().Err())

	failure := errors.New("boom")
	_, err := Apply(first, 0, failure)
	assert.ErrorIs(t, err, failure)

	first.End()
	assert.ErrorIs(t, first.Context().Err(), context.Canceled)
}
