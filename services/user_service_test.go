package services

import (
	"testing"

	"github.com/borovikovd/realworld-backend-go/auth"
	"github.com/borovikovd/realworld-backend-go/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	d := testDB(t)
	svc := NewUserService(d, auth.NewPasswordHasher())

	user, err := svc.Register("jake@jake.jake", "jake", "hunter2hunter2")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)

	logged, err := svc.Login("jake@jake.jake", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	d := testDB(t)
	svc := NewUserService(d, auth.NewPasswordHasher())

	_, err := svc.Register("jake@jake.jake", "jake", "hunter2hunter2")
	require.NoError(t, err)

	_, err = svc.Register("jake@jake.jake", "jake2", "hunter2hunter2")
	require.Error(t, err)
	require.True(t, errs.IsValidationError(err))
	assert.Equal(t, []string{"is already taken"}, errs.ValidationFields(err)["email"])
}

func TestRegisterShortPassword(t *testing.T) {
	d := testDB(t)
	svc := NewUserService(d, auth.NewPasswordHasher())

	_, err := svc.Register("jake@jake.jake", "jake", "short")
	require.Error(t, err)
	require.True(t, errs.IsValidationError(err))
	assert.Contains(t, errs.ValidationFields(err), "password")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	d := testDB(t)
	svc := NewUserService(d, auth.NewPasswordHasher())

	_, err := svc.Register("jake@jake.jake", "jake", "hunter2hunter2")
	require.NoError(t, err)

	_, wrongPassword := svc.Login("jake@jake.jake", "not-the-password")
	require.Error(t, wrongPassword)
	assert.True(t, errs.IsUnauthorized(wrongPassword))

	_, unknownEmail := svc.Login("nobody@jake.jake", "hunter2hunter2")
	require.Error(t, unknownEmail)
	assert.True(t, errs.IsUnauthorized(unknownEmail))

	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestUpdateUserUniquenessChecks(t *testing.T) {
	d := testDB(t)
	svc := NewUserService(d, auth.NewPasswordHasher())

	jake, err := svc.Register("jake@jake.jake", "jake", "hunter2hunter2")
	require.NoError(t, err)
	_, err = svc.Register("anne@jake.jake", "anne", "hunter2hunter2")
	require.NoError(t, err)

	// Claiming another user's username is rejected
	_, err = svc.UpdateUser(jake.ID, nil, strPtr("anne"), nil, nil, nil)
	require.Error(t, err)
	require.True(t, errs.IsValidationError(err))
	assert.Contains(t, errs.ValidationFields(err), "username")

	// Re-submitting one's own email is fine
	bio := "I like dragons"
	updated, err := svc.UpdateUser(jake.ID, strPtr("jake@jake.jake"), nil, nil, &bio, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, bio, *updated.Bio)
}

func TestUpdateUserChangesPassword(t *testing.T) {
	d := testDB(t)
	svc := NewUserService(d, auth.NewPasswordHasher())

	jake, err := svc.Register("jake@jake.jake", "jake", "hunter2hunter2")
	require.NoError(t, err)

	_, err = svc.UpdateUser(jake.ID, nil, nil, strPtr("anothersecret"), nil, nil)
	require.NoError(t, err)

	_, err = svc.Login("jake@jake.jake", "hunter2hunter2")
	require.Error(t, err)

	_, err = svc.Login("jake@jake.jake", "anothersecret")
	require.NoError(t, err)
}
