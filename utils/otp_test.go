package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 100; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, ch := range code {
			assert.True(t, ch >= '0' && ch <= '9')
		}
		seen[code] = true
	}

	// 100 draws from a million-value space should not all collide
	assert.Greater(t, len(seen), 1)
}
