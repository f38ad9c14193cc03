package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderName(t *testing.T) {
	assert.Equal(t, "手机用户5678", PlaceholderName("13812345678"))
	assert.Equal(t, "手机用户0000", PlaceholderName("13900000000"))
	// Degenerate input still yields a usable name.
	assert.Equal(t, "手机用户123", PlaceholderName("123"))
}

func TestAccount_HasPassword(t *testing.T) {
	assert.False(t, (&Account{}).HasPassword())
	assert.True(t, (&Account{PasswordHash: "$2a$12$hash"}).HasPassword())
}

func TestAccount_IsIdentityBound(t *testing.T) {
	assert.False(t, (&Account{}).IsIdentityBound())
	assert.True(t, (&Account{OpenID: "wx-openid-1"}).IsIdentityBound())
}

func TestPendingIdentity_IsEmpty(t *testing.T) {
	var nilIdentity *PendingIdentity
	assert.True(t, nilIdentity.IsEmpty())
	assert.True(t, (&PendingIdentity{}).IsEmpty())
	assert.True(t, (&PendingIdentity{Name: "只有昵称"}).IsEmpty())
	assert.False(t, (&PendingIdentity{OpenID: "wx-openid-1"}).IsEmpty())
}
