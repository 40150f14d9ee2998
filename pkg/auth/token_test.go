package auth

import (
	"testing"
	"time"

	"github.com/dmtumanov/beanline-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAdminConfig() config.AdminConfig {
	return config.AdminConfig{
		PasscodeHash:    "unused",
		TokenSecret:     "test-secret",
		TokenTTLMinutes: 60,
	}
}

func TestMintAndParseAdminToken(t *testing.T) {
	cfg := testAdminConfig()

	token, err := MintAdminToken(cfg, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAdminToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "beanline", claims.Issuer)
}

func TestParseAdminToken_WrongSecret(t *testing.T) {
	token, err := MintAdminToken(testAdminConfig(), time.Now())
	require.NoError(t, err)

	other := testAdminConfig()
	other.TokenSecret = "different-secret"
	_, err = ParseAdminToken(other, token)
	assert.Error(t, err)
}

func TestParseAdminToken_Expired(t *testing.T) {
	cfg := testAdminConfig()

	token, err := MintAdminToken(cfg, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = ParseAdminToken(cfg, token)
	assert.Error(t, err)
}

func TestMintAdminToken_RequiresSecret(t *testing.T) {
	cfg := testAdminConfig()
	cfg.TokenSecret = ""
	_, err := MintAdminToken(cfg, time.Now())
	assert.Error(t, err)
}
