package models

import "time"

// Service is a priced resource that can be paid for through the x402 flow.
type Service struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Category        string    `json:"category" db:"category"`
	MerchantAddress string    `json:"merchant_address" db:"merchant_address"`
	Network         Network   `json:"network" db:"network"`
	ChainID         int64     `json:"chain_id" db:"chain_id"`
	TokenAddress    string    `json:"token_address" db:"token_address"`
	TokenSymbol     string    `json:"token_symbol" db:"token_symbol"`
	PriceMinor      int64     `json:"price_minor" db:"price_minor"`
	PriceDisplay    string    `json:"price_display" db:"price_display"`
	Active          bool      `json:"active" db:"active"`
	UpstreamURL     *string   `json:"upstream_url,omitempty" db:"upstream_url"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// CreateServiceRequest is the payload for registering a new priced resource.
type CreateServiceRequest struct {
	Name            string `json:"name" validate:"required"`
	Category        string `json:"category"`
	MerchantAddress string `json:"merchant_address" validate:"required"`
	Network         string `json:"network"`
	TokenAddress    string `json:"token_address" validate:"required"`
	TokenSymbol     string `json:"token_symbol" validate:"required"`
	Price           string `json:"price" validate:"required"`
	UpstreamURL     string `json:"upstream_url,omitempty"`
}

// UpdateServiceRequest carries the only mutable Service fields. Price and
// availability may change; chain and merchant identity may not.
type UpdateServiceRequest struct {
	Price  *string `json:"price,omitempty"`
	Active *bool   `json:"active,omitempty"`
}
