package request

// VehicleRequest represents one vehicle in a client request
type VehicleRequest struct {
	Brand              string  `json:"brand" binding:"required,min=1,max=100"`
	Model              string  `json:"model" binding:"required,min=1,max=100"`
	Year               int     `json:"year" binding:"required,min=1900,max=2100"`
	Plates             string  `json:"plates" binding:"required,min=1,max=20"`
	EngineDisplacement *string `json:"engine_displacement"`
	Description        *string `json:"description"`
}

// CreateClientRequest represents a client creation request
type CreateClientRequest struct {
	FullName    string           `json:"full_name" binding:"required,min=2,max=255"`
	FullSurname string           `json:"full_surname" binding:"required,min=2,max=255"`
	Identified  string           `json:"identified" binding:"required,min=4,max=50"`
	PhoneNumber string           `json:"phone_number" binding:"required,min=6,max=50"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	Address     *string          `json:"address"`
	Vehicles    []VehicleRequest `json:"vehicles" binding:"omitempty,dive"`
}

// UpdateClientRequest represents a client update request
type UpdateClientRequest struct {
	FullName    *string `json:"full_name" binding:"omitempty,min=2,max=255"`
	FullSurname *string `json:"full_surname" binding:"omitempty,min=2,max=255"`
	State       *string `json:"client_state" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,min=6,max=50"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Address     *string `json:"address"`
}

// ClientFilterRequest represents client list filter parameters
type ClientFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
