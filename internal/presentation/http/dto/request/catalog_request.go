package request

// CreateServiceRequest represents a catalog service creation request
type CreateServiceRequest struct {
	Name       string  `json:"name" binding:"required,min=2,max=255"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	CategoryID *uint   `json:"category_id"`
}

// UpdateServiceRequest represents a catalog service update request
type UpdateServiceRequest struct {
	Name       *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Price      *float64 `json:"price" binding:"omitempty,gt=0"`
	CategoryID *uint    `json:"category_id"`
}

// CreateCategoryRequest represents a service category creation request
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// CreatePieceRequest represents an inventory piece creation request
type CreatePieceRequest struct {
	Name  string  `json:"name" binding:"required,min=2,max=255"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Stock int     `json:"stock" binding:"min=0"`
}

// UpdatePieceRequest represents an inventory piece update request
type UpdatePieceRequest struct {
	Name  *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Price *float64 `json:"price" binding:"omitempty,gt=0"`
	Stock *int     `json:"stock" binding:"omitempty,min=0"`
}

// CatalogFilterRequest represents catalog list filter parameters
type CatalogFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
