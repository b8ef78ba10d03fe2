package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ritamsamanta1/fish/config"
	"github.com/ritamsamanta1/fish/utils"
)

func TestCheckAdminPassword_Plain(t *testing.T) {
	cfg := &config.Config{AdminPassword: "secret123"}

	assert.True(t, utils.CheckAdminPassword(cfg, "secret123"))
	assert.False(t, utils.CheckAdminPassword(cfg, "secret124"))
	assert.False(t, utils.CheckAdminPassword(cfg, "secret1234"))
	assert.False(t, utils.CheckAdminPassword(cfg, ""))
}

func TestCheckAdminPassword_Hashed(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := &config.Config{AdminPassword: string(hash), AdminPasswordHashed: true}

	assert.True(t, utils.CheckAdminPassword(cfg, "secret123"))
	assert.False(t, utils.CheckAdminPassword(cfg, "wrong"))
	assert.False(t, utils.CheckAdminPassword(cfg, ""))
}
