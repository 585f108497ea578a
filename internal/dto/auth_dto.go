package dto

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CreateUserRequest struct {
	Name              string            `json:"name"     validate:"required,min=2"`
	Email             string            `json:"email"    validate:"required,email"`
	Password          string            `json:"password" validate:"required,min=6"`
	Role              string            `json:"role"     validate:"required,oneof=Admin Cajero Almacén"`
	BranchAssignments map[string]string `json:"branch_assignments"`
}

type UpdateUserRequest struct {
	Name              *string           `json:"name" validate:"omitempty,min=2"`
	Role              *string           `json:"role" validate:"omitempty,oneof=Admin Cajero Almacén"`
	Password          *string           `json:"password" validate:"omitempty,min=6"`
	BranchAssignments map[string]string `json:"branch_assignments"`
	Active            *bool             `json:"active"`
}

type UserResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	Role              string            `json:"role"`
	BranchAssignments map[string]string `json:"branch_assignments,omitempty"`
	Active            bool              `json:"active"`
}
