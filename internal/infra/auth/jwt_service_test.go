package auth

import (
	"testing"
	"time"

	"medify/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"
	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(testTokenConfig())
	assert.NoError(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	accountID := uuid.New()
	access, refresh, err := svc.GenerateTokens(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	accessClaims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, accountID, accessClaims.AccountID)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, accountID, refreshClaims.AccountID)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	access, refresh, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// An access token is not a refresh token and vice versa, even if the
	// secrets happened to match.
	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access + "x")
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	other := testTokenConfig()
	other.SecretKey.Access = "a-different-secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	access, _, err := otherSvc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := testTokenConfig()
	svc := &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     -time.Minute, // Already expired at issuance.
		refreshTTL:    time.Hour,
	}

	access, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsNonUUIDSubject(t *testing.T) {
	cfg := testTokenConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "not-a-uuid",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Minute).Unix(),
		"type": "access",
	})
	signed, err := token.SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(signed)
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, svc.GetRefreshTokenDuration())
}
