package models

// Query parameters for the page endpoints. Defaults are filled by creasty/defaults
// and constraints are checked by go-playground/validator.

type SignalsRequest struct {
	Search string `query:"search" json:"search" validate:"max=64"`
	Type   string `query:"type" json:"type" default:"ALL" validate:"oneof=ALL bullish bearish momentum whale_alert new_listing neutral"`
}

type WhalesRequest struct {
	Chain string `query:"chain" json:"chain" default:"ALL" validate:"max=16,alphanum"`
}

type LiveRequest struct {
	Page string `query:"page" json:"page" default:"dashboard" validate:"oneof=dashboard signals whales analytics"`
}
