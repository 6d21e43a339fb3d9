//go:build !mobile

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("STARLASER_MOBILE_EMULATE", "")
	assert.False(t, IsMobile())

	t.Setenv("STARLASER_MOBILE_EMULATE", "1")
	assert.True(t, IsMobile())
}

func TestEnsureStorageDir_Desktop(t *testing.T) {
	assert.NoError(t, EnsureStorageDir())
	assert.Empty(t, GetStoragePath())
}
