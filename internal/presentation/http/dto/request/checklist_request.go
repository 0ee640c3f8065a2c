package request

// ChecklistItemRequest represents one inspected point
type ChecklistItemRequest struct {
	Label     string  `json:"label" binding:"required,min=1,max=255"`
	Category  string  `json:"category" binding:"omitempty,max=100"`
	Checked   bool    `json:"checked"`
	Condition string  `json:"condition" binding:"omitempty,oneof=Excellent Good Regular Bad RequiresAttention"`
	Notes     *string `json:"notes"`
}

// CreateChecklistRequest represents a checklist creation request
type CreateChecklistRequest struct {
	AppointmentID  uint                   `json:"appointment_id" binding:"required"`
	CheckType      string                 `json:"check_type" binding:"required,min=2,max=100"`
	FuelLevel      int                    `json:"fuel_level" binding:"min=0,max=100"`
	Mileage        string                 `json:"mileage" binding:"omitempty,max=50"`
	GeneralNotes   *string                `json:"general_notes"`
	TechnicianName string                 `json:"technician_name" binding:"omitempty,max=255"`
	Items          []ChecklistItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateChecklistItemsRequest replaces the inspected points
type UpdateChecklistItemsRequest struct {
	Items []ChecklistItemRequest `json:"items" binding:"required,dive"`
}

// AttachChecklistImageRequest attaches an uploaded photo reference
type AttachChecklistImageRequest struct {
	ImageURL    string  `json:"image_url" binding:"required,url"`
	Description *string `json:"description"`
}
