package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")

// Property is the canonical listing schema. The basic fields (title, price,
// status, images) are always present; the extended CRM fields are optional
// and omitted from JSON when unset, so older records round-trip unchanged.
//
// Status is free text by design ("available", "sold", "pending", ...); the
// server does not validate it against a fixed set.
type Property struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Status      string     `json:"status"`
	AgentID     *string    `json:"agentId"`
	Images      []string   `json:"images"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`

	// Extended CRM fields.
	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	ZipCode   string   `json:"zipCode,omitempty"`
	Bedrooms  int      `json:"bedrooms,omitempty"`
	Bathrooms int      `json:"bathrooms,omitempty"`
	AreaSqFt  float64  `json:"areaSqFt,omitempty"`
	Videos    []string `json:"videos,omitempty"`
	Features  []string `json:"features,omitempty"`
}
