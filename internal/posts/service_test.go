package posts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeCache records interactions so tests can assert cache behavior
// without a Redis server.
type fakeCache struct {
	list        []Post
	populated   bool
	hits, sets  int
	invalidates int
}

func (f *fakeCache) GetList(ctx context.Context) ([]Post, bool) {
	if !f.populated {
		return nil, false
	}
	f.hits++
	return f.list, true
}

func (f *fakeCache) SetList(ctx context.Context, posts []Post) {
	f.sets++
	f.list = posts
	f.populated = true
}

func (f *fakeCache) Invalidate(ctx context.Context) {
	f.invalidates++
	f.populated = false
}

func fixedClock() time.Time { return time.Unix(1700000000, 0).UTC() }

func TestCreateDefaultsAuthorFromIdentity(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepo(), nil)
	s.clock = fixedClock

	p, err := s.Create(ctx, CreateRequest{Title: "hello", Text: "first post"}, 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), p.UserID)
	require.Equal(t, fixedClock(), p.CreatedAt)

	p2, err := s.Create(ctx, CreateRequest{Title: "hi", Text: "x", UserID: 3}, 7)
	require.NoError(t, err)
	require.Equal(t, int64(3), p2.UserID)
}

func TestListUsesCache(t *testing.T) {
	ctx := context.Background()
	cache := &fakeCache{}
	s := NewService(NewMemoryRepo(), cache)

	_, err := s.Create(ctx, CreateRequest{Title: "a", Text: "b"}, 1)
	require.NoError(t, err)
	require.Equal(t, 1, cache.invalidates)

	first, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 1, cache.sets)

	second, err := s.List(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, cache.hits)
	require.Equal(t, 1, cache.sets, "second list should be served from cache")
}

func TestMutationsInvalidateCache(t *testing.T) {
	ctx := context.Background()
	cache := &fakeCache{}
	s := NewService(NewMemoryRepo(), cache)

	p, err := s.Create(ctx, CreateRequest{Title: "a", Text: "b"}, 1)
	require.NoError(t, err)

	_, err = s.List(ctx)
	require.NoError(t, err)
	require.True(t, cache.populated)

	_, err = s.Update(ctx, p.ID, CreateRequest{Title: "a2", Text: "b2"})
	require.NoError(t, err)
	require.False(t, cache.populated)

	_, err = s.List(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, p.ID))
	require.False(t, cache.populated)
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepo(), nil)

	_, err := s.Update(ctx, 42, CreateRequest{Title: "a", Text: "b"})
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, s.Delete(ctx, 42), ErrNotFound)

	_, err = s.Get(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)
}
