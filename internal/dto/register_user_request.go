// File: internal/dto/register_user_request.go
package dto

// swagger:model dto.RegisterUserRequest
type RegisterUserRequest struct {
	FirstName            string `json:"firstName" form:"firstName" validate:"required" example:"Joe"`
	LastName             string `json:"lastName" form:"lastName" validate:"required" example:"Foo"`
	Email                string `json:"email" form:"email" validate:"required,email" example:"joefoo@test.com"`
	Password             string `json:"password" form:"password" validate:"required" example:"Passw0rd!"`
	ConfirmationPassword string `json:"confirmationPassword" form:"confirmationPassword" validate:"required" example:"Passw0rd!"`
	Role                 string `json:"role" form:"role" validate:"omitempty,oneof=admin user" example:"user"`
}
