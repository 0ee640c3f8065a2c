package request

import "time"

// CreateAppointmentRequest represents an appointment creation request
type CreateAppointmentRequest struct {
	ClientID    uint      `json:"client_id" binding:"required"`
	VehicleID   uint      `json:"vehicle_id" binding:"required"`
	MechanicID  *uint     `json:"mechanic_id"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Notes       *string   `json:"notes"`
}

// UpdateAppointmentRequest represents an appointment update request
type UpdateAppointmentRequest struct {
	MechanicID  *uint      `json:"mechanic_id"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Notes       *string    `json:"notes"`
	Status      *int       `json:"status" binding:"omitempty,min=0,max=4"`
}

// AppointmentFilterRequest represents appointment list filter parameters
type AppointmentFilterRequest struct {
	Status  *int `form:"status" binding:"omitempty,min=0,max=4"`
	Page    int  `form:"page"`
	PerPage int  `form:"per_page"`
}
