package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeCreate_AssignsID(t *testing.T) {
	account := &AccountModel{}
	require.NoError(t, account.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, account.ID)

	setup := &WebsiteSetupModel{}
	require.NoError(t, setup.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, setup.ID)

	info := &BusinessInfoModel{}
	require.NoError(t, info.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, info.ID)

	token := &RefreshTokenModel{}
	require.NoError(t, token.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, token.ID)
}

func TestBeforeCreate_KeepsSuppliedID(t *testing.T) {
	id := uuid.New()
	account := &AccountModel{ID: id}

	require.NoError(t, account.BeforeCreate(nil))
	assert.Equal(t, id, account.ID)
}
