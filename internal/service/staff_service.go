package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/repairhub/internal/domain"
	"github.com/spec-kit/repairhub/internal/repository"
	apperrors "github.com/spec-kit/repairhub/pkg/util"
)

// StaffService handles warden administration of maintenance personnel.
type StaffService struct {
	users repository.UserRepository
}

// StaffUpdateInput carries partial staff record changes.
type StaffUpdateInput struct {
	Name        *string
	PhoneNumber *string
	Role        *string
}

// NewStaffService constructs the service.
func NewStaffService(users repository.UserRepository) *StaffService {
	return &StaffService{users: users}
}

// ListStaff returns all STAFF and TECHNICIAN accounts.
func (s *StaffService) ListStaff(ctx context.Context) ([]domain.User, error) {
	result, err := s.users.ListByRoles(ctx, []domain.Role{domain.RoleStaff, domain.RoleTechnician})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// UpdateStaffMember applies a partial update to a staff account. Role
// changes are restricted to the staff roles; promoting to WARDEN or
// demoting to STUDENT is not a staff-management operation.
func (s *StaffService) UpdateStaffMember(ctx context.Context, id string, input StaffUpdateInput) (*domain.User, error) {
	user, err := s.getStaffMember(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Role != nil {
		role := domain.Role(strings.ToUpper(strings.TrimSpace(*input.Role)))
		if !domain.IsStaffRole(role) {
			return nil, apperrors.NewValidationError("role must be STAFF or TECHNICIAN", map[string]any{"role": *input.Role})
		}
		user.Role = role
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// DeleteStaffMember removes a staff account.
func (s *StaffService) DeleteStaffMember(ctx context.Context, id string) error {
	if _, err := s.getStaffMember(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *StaffService) getStaffMember(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff member", map[string]any{"staff_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	if !domain.IsStaffRole(user.Role) {
		return nil, apperrors.NewNotFound("staff member", map[string]any{"staff_id": id})
	}
	return user, nil
}
