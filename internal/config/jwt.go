// Package config provides JWT configuration functionality.
package config

import (
	"fmt"
	"os"
)

// JWTConfig holds what token validation needs: the HMAC secret shared with
// the platform's auth service. Expiry is carried inside the tokens
// themselves; this service never issues any.
type JWTConfig struct {
	Secret string
}

// NewJWTConfig reads the JWT configuration from the environment.
// JWT_SECRET is required.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	return &JWTConfig{Secret: secret}, nil
}
