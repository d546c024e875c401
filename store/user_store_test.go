package store_test

import (
	"context"
	"testing"

	"safarihub/models"
	"safarihub/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDuplicateEmailConflicts(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first := models.User{Name: "Jane", Email: "jane@example.com"}
	require.Equal(t, store.KindNone, s.CreateUser(ctx, &first))

	second := models.User{Name: "Other Jane", Email: "jane@example.com"}
	assert.Equal(t, store.KindConflict, s.CreateUser(ctx, &second))
}

func TestUserByEmail(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	user := models.User{Name: "Jane", Email: "jane@example.com", Role: models.RoleUser}
	require.Equal(t, store.KindNone, s.CreateUser(ctx, &user))

	found, kind := s.UserByEmail(ctx, "jane@example.com")
	require.Equal(t, store.KindNone, kind)
	assert.Equal(t, user.ID, found.ID)

	_, kind = s.UserByEmail(ctx, "nobody@example.com")
	assert.Equal(t, store.KindNotFound, kind)
}

func TestAllUsersRequiresAdmin(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.Equal(t, store.KindNone, s.CreateUser(ctx, &models.User{Name: "Jane", Email: "jane@example.com"}))

	_, kind := s.AllUsers(ctx, store.Principal{UserID: uuid.New(), Role: models.RoleUser})
	assert.Equal(t, store.KindForbidden, kind)

	users, kind := s.AllUsers(ctx, adminPrincipal)
	require.Equal(t, store.KindNone, kind)
	assert.Len(t, users, 1)
}
