package contracts

import (
	"time"

	"github.com/Perod122/SinkIt/internal/domain/user"
)

type UserResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		Id:        u.Id.String(),
		Name:      u.Name,
		Email:     u.Email,
		Plan:      string(u.Plan),
		CreatedAt: u.CreatedAt,
	}
}

type UpdateNameRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
