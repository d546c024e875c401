package store

import (
	"context"

	"safarihub/models"
)

// CreateUser inserts a new account. A duplicate email comes back as a
// Conflict from the unique index.
func (s *Store) CreateUser(ctx context.Context, user *models.User) ErrorKind {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fail("create user", err)
	}
	return KindNone
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, ErrorKind) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fail("user by email", err)
	}
	return &user, KindNone
}

func (s *Store) AllUsers(ctx context.Context, p Principal) ([]models.User, ErrorKind) {
	if !p.IsAdmin() {
		return []models.User{}, KindForbidden
	}

	users := []models.User{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return []models.User{}, fail("all users", err)
	}
	return users, KindNone
}
