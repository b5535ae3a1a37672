package services

import (
	"context"
	"testing"

	"github.com/beauxarts/marketplace-api/internal/database/dbtest"
	"github.com/beauxarts/marketplace-api/internal/dto"
	"github.com/beauxarts/marketplace-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	tokens := newTokens()
	svc := NewAuthService(dbtest.New(t), tokens)

	res, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email: "  Ann@Example.com ", Password: "password1", Fullname: "Ann Lee",
	})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", res.User.Email)
	assert.Equal(t, models.RoleUser, res.User.Role)

	id, err := tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id.UserID)
	assert.Equal(t, "Ann Lee", id.Fullname)

	var stored models.User
	require.NoError(t, svc.db.First(&stored, "id = ?", res.User.ID).Error)
	assert.NotEqual(t, "password1", stored.Password)

	_, err = svc.Signup(context.Background(), &dto.SignupRequest{Email: "ann@example.com", Password: "password2", Fullname: "Ann"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ANN@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "ann@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMeReflectsCurrentRole(t *testing.T) {
	svc := NewAuthService(dbtest.New(t), newTokens())
	user := seedUser(t, svc.db, "ann@example.com", models.RoleUser)
	require.NoError(t, svc.db.Model(&models.User{}).Where("id = ?", user.ID).Update("role", models.RoleSeller).Error)

	me, err := svc.Me(context.Background(), identityOf(user))
	require.NoError(t, err)
	assert.Equal(t, models.RoleSeller, me.Role)

	ghost := identityOf(user)
	require.NoError(t, svc.db.Delete(&user).Error)
	_, err = svc.Me(context.Background(), ghost)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
