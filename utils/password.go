package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/ritamsamanta1/fish/config"
)

// CheckAdminPassword compares a candidate against the configured admin
// secret. With ADMIN_PASSWORD_HASHED the configured value is a bcrypt hash;
// otherwise the plaintext comparison runs in constant time.
func CheckAdminPassword(cfg *config.Config, candidate string) bool {
	if candidate == "" {
		return false
	}
	if cfg.AdminPasswordHashed {
		return bcrypt.CompareHashAndPassword([]byte(cfg.AdminPassword), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(cfg.AdminPassword), []byte(candidate)) == 1
}
