package converter

import (
	"ehr-vaccine-service/internal/delivery/dto"
	"ehr-vaccine-service/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// The role name falls back to the role id lookup when Role was not preloaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	role := user.Role.RoleName
	if role == "" {
		role = entity.RoleNameByID(user.RoleID)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
