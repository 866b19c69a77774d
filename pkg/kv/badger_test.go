package kv_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/bookbuddy-service/pkg/kv"
	"github.com/stretchr/testify/require"
)

func TestBadger(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := kv.New(ctx, kv.Config{Backend: kv.BackendBadger, Path: dir})
	require.NoError(t, err)

	_, err = s.Get(ctx, "missing")
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "a", []byte("2")))
	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []byte("2"), got)
	require.NoError(t, s.Close())

	// reopen survives restart
	s, err = kv.NewBadger(dir)
	require.NoError(t, err)
	got, err = s.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []byte("2"), got)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	require.ErrorIs(t, err, kv.ErrNotFound)
	require.NoError(t, s.Close())
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := kv.New(context.Background(), kv.Config{Backend: "etcd"})
	require.Error(t, err)
}
