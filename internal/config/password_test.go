package config

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPasswordConfig(pepper string) *PasswordConfig {
	return &PasswordConfig{BcryptCost: 4, Pepper: pepper}
}

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		pepper     string
		wantCost   int
		wantErr    bool
	}{
		{"default cost", "", "", 12, false},
		{"valid cost", "10", "", 10, false},
		{"low test cost", "4", "", 4, false},
		{"cost too low", "3", "", 0, true},
		{"cost too high", "15", "", 0, true},
		{"invalid cost", "invalid", "", 0, true},
		{"with pepper", "12", "test-pepper", 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.bcryptCost)
			t.Setenv("PASSWORD_PEPPER", tt.pepper)

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.pepper, cfg.Pepper)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := testPasswordConfig("")

	hash, err := cfg.HashPassword("Secret1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret1!", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, cfg.VerifyPassword("Secret1!", hash))
	assert.False(t, cfg.VerifyPassword("secret1!", hash))
	assert.False(t, cfg.VerifyPassword("Secret1!", "not-a-hash"))
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := testPasswordConfig("pepper-one")
	hash, err := peppered.HashPassword("Secret1!")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("Secret1!", hash))
	assert.False(t, testPasswordConfig("").VerifyPassword("Secret1!", hash), "pepper is required to verify")
	assert.False(t, testPasswordConfig("pepper-two").VerifyPassword("Secret1!", hash), "rotated pepper invalidates hashes")
}

func TestPasswordConfig_SaltUniqueness(t *testing.T) {
	cfg := testPasswordConfig("")
	first, err := cfg.HashPassword("Secret1!")
	require.NoError(t, err)
	second, err := cfg.HashPassword("Secret1!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, cfg.VerifyPassword("Secret1!", first))
	assert.True(t, cfg.VerifyPassword("Secret1!", second))
}

func TestPasswordConfig_ExceedsBcryptLimit(t *testing.T) {
	_, err := testPasswordConfig("").HashPassword(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestPasswordConfig_ConcurrentAccess(t *testing.T) {
	cfg := testPasswordConfig("shared")
	hash, err := cfg.HashPassword("Secret1!")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, cfg.VerifyPassword("Secret1!", hash))
		}()
	}
	wg.Wait()
}

func TestCheckPasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Abcde1!", ""},
		{"valid at max length", "Abcdefghijk12#x", ""},
		{"too short", "Ab1!", "at least 6"},
		{"too long", "Abcdefghijk12#xy", "at most 15"},
		{"no digit", "Abcdef!", "one number"},
		{"no special", "Abcdef1", "one special"},
		{"no upper", "abcdef1!", "uppercase"},
		{"no lower", "ABCDEF1!", "lowercase"},
		{"backslash counts as special", `Abcde1\`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPasswordPolicy(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
