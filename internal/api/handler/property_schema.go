package handler

// Request types for the property endpoints. Responses use the canonical
// domain.Property shape directly: the stored record and the API contract are
// the same JSON document.

type createPropertyRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	Status      string   `json:"status"      validate:"required"`
	AgentID     *string  `json:"agentId"`
	Images      []string `json:"images"`

	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   string   `json:"zipCode"`
	Bedrooms  int      `json:"bedrooms"  validate:"omitempty,min=0"`
	Bathrooms int      `json:"bathrooms" validate:"omitempty,min=0"`
	AreaSqFt  float64  `json:"areaSqFt"  validate:"omitempty,gt=0"`
	Videos    []string `json:"videos"`
	Features  []string `json:"features"`
}

// updatePropertyRequest is a partial update: every field is a pointer so the
// handler can distinguish "absent" from "set to zero value". Absent fields
// are merged over, never cleared.
type updatePropertyRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" validate:"omitempty,gt=0"`
	Status      *string   `json:"status"`
	AgentID     *string   `json:"agentId"`
	Images      *[]string `json:"images"`

	Address   *string   `json:"address"`
	City      *string   `json:"city"`
	State     *string   `json:"state"`
	ZipCode   *string   `json:"zipCode"`
	Bedrooms  *int      `json:"bedrooms"  validate:"omitempty,min=0"`
	Bathrooms *int      `json:"bathrooms" validate:"omitempty,min=0"`
	AreaSqFt  *float64  `json:"areaSqFt"  validate:"omitempty,gt=0"`
	Videos    *[]string `json:"videos"`
	Features  *[]string `json:"features"`
}
