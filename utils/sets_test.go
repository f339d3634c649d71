package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	set := NewSet("id", "name", "id")
	require.Equal(t, 2, set.Size())
	require.True(t, set.Contains("id"))
	require.False(t, set.Contains("email"))

	set.Put("email")
	require.True(t, set.Contains("email"))

	set.Remove("email")
	require.False(t, set.Contains("email"))
	require.Equal(t, 2, set.Size())

	require.Equal(t, []string{"id", "name"}, set.ToSlice())
	require.Equal(t, []string{}, NewSet[string]().ToSlice())

	clone := set.Clone()
	require.True(t, clone.Equals(set))
	clone.Put("email")
	require.False(t, clone.Equals(set))
	require.False(t, set.Contains("email"))
}
