package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)
	hash, err := h.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, h.Compare(hash, "hunter22"))
	assert.ErrorIs(t, h.Compare(hash, "hunter23"), ErrMismatch)
	assert.Error(t, h.Compare("not-a-hash", "hunter22"))
}
