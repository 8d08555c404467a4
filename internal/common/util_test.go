package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	for _, n := range []int{0, 1, 16, 32} {
		s, err := MakeRandHexString(n)
		require.NoError(t, err)
		assert.Len(t, s, n*2)

		_, err = hex.DecodeString(s)
		assert.NoError(t, err)
	}

	a, _ := MakeRandHexString(16)
	b, _ := MakeRandHexString(16)
	assert.NotEqual(t, a, b)
}

func TestWipeByteArray(t *testing.T) {
	password := []byte("correct horse battery")
	WipeByteArray(password)
	assert.Equal(t, make([]byte, len(password)), password)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}
