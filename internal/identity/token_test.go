package identity

import (
	"testing"
	"time"

	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(role string) *models.User {
	return &models.User{ID: uuid.New(), Email: "ada@example.com", Fullname: "Ada", Role: role}
}

func TestIssueAndParseIsStable(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	user := newUser(models.RoleSeller)

	token, err := issuer.Issue(user)
	require.NoError(t, err)

	first, err := issuer.Parse(token)
	require.NoError(t, err)
	second, err := issuer.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, user.ID, first.UserID)
	assert.Equal(t, "ada@example.com", first.Email)
	assert.Equal(t, models.RoleSeller, first.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret", time.Hour).Issue(newUser(models.RoleUser))
	require.NoError(t, err)

	_, err = NewTokenIssuer("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := issuer.Issue(newUser(models.RoleUser))
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Minute).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("secret", time.Hour).Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRoleHelpers(t *testing.T) {
	owner := uuid.New()
	seller := Identity{UserID: owner, Role: models.RoleSeller}
	admin := Identity{UserID: uuid.New(), Role: models.RoleAdmin}
	user := Identity{UserID: uuid.New(), Role: models.RoleUser}

	assert.True(t, seller.CanSell())
	assert.True(t, admin.CanSell())
	assert.False(t, user.CanSell())

	assert.True(t, seller.Owns(owner))
	assert.True(t, admin.Owns(owner))
	assert.False(t, user.Owns(owner))
	assert.False(t, Identity{}.Owns(uuid.Nil))
}
