package store

import (
	"context"

	"safarihub/models"

	"github.com/google/uuid"
)

// ActiveTeam is the public team listing.
func (s *Store) ActiveTeam(ctx context.Context) ([]models.Team, ErrorKind) {
	members := []models.Team{}
	err := s.db.WithContext(ctx).
		Where("status = ?", true).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return []models.Team{}, fail("active team", err)
	}
	return members, KindNone
}

func (s *Store) AllTeam(ctx context.Context, p Principal) ([]models.Team, ErrorKind) {
	if !p.IsAdmin() {
		return []models.Team{}, KindForbidden
	}

	members := []models.Team{}
	err := s.db.WithContext(ctx).Order("created_at ASC").Find(&members).Error
	if err != nil {
		return []models.Team{}, fail("all team", err)
	}
	return members, KindNone
}

func (s *Store) CreateTeamMember(ctx context.Context, p Principal, member *models.Team) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}
	if err := s.db.WithContext(ctx).Create(member).Error; err != nil {
		return fail("create team member", err)
	}
	return KindNone
}

type TeamPatch struct {
	Name     *string
	Nickname *string
	Position *string
	Image    *string
	Bio      *string
	Status   *bool
}

func (s *Store) UpdateTeamMember(ctx context.Context, p Principal, id uuid.UUID, patch TeamPatch) (*models.Team, ErrorKind) {
	if !p.IsAdmin() {
		return nil, KindForbidden
	}

	var member models.Team
	if err := s.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, fail("update team member: load", err)
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Nickname != nil {
		updates["nickname"] = *patch.Nickname
	}
	if patch.Position != nil {
		updates["position"] = *patch.Position
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&member).Updates(updates).Error; err != nil {
			return nil, fail("update team member", err)
		}
		if err := s.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
			return nil, fail("update team member: reload", err)
		}
	}

	return &member, KindNone
}

func (s *Store) DeleteTeamMember(ctx context.Context, p Principal, id uuid.UUID) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	res := s.db.WithContext(ctx).Delete(&models.Team{}, "id = ?", id)
	if res.Error != nil {
		return fail("delete team member", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}
	return KindNone
}
