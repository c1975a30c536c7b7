// File: internal/dto/login_request.go
package dto

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"joefoo@test.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Passw0rd!"`
}
