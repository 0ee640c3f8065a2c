package request

// UpdateUserRequest represents a staff account update request
type UpdateUserRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Surname *string `json:"surname" binding:"omitempty,min=2,max=255"`
	Role    *string `json:"role" binding:"omitempty,oneof=ADMIN RECEPTIONIST MECHANIC"`
	Active  *bool   `json:"active"`
}
