package id_test

import (
	"regexp"
	"testing"

	"github.com/Astemirdum/bookbuddy-service/pkg/id"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	re := regexp.MustCompile(`^list-[0-9A-Za-z]{12}$`)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		v, err := id.Generate("list")
		require.NoError(t, err)
		require.Regexp(t, re, v)
		_, dup := seen[v]
		require.False(t, dup)
		seen[v] = struct{}{}
	}
}
