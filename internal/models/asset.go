// Package models defines the domain records produced by the ingestion engine.
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetCategory tags an asset by broad type
type AssetCategory string

const (
	AssetCash       AssetCategory = "cash"
	AssetRealEstate AssetCategory = "real_estate"
	AssetVehicle    AssetCategory = "vehicle"
	AssetCrypto     AssetCategory = "crypto"
	AssetRetirement AssetCategory = "retirement"
	AssetOther      AssetCategory = "other"
)

// AllAssetCategories returns all valid categories for iteration
func AllAssetCategories() []AssetCategory {
	return []AssetCategory{
		AssetCash,
		AssetRealEstate,
		AssetVehicle,
		AssetCrypto,
		AssetRetirement,
		AssetOther,
	}
}

// DisplayName returns a human-readable name for the category
func (c AssetCategory) DisplayName() string {
	switch c {
	case AssetCash:
		return "Cash"
	case AssetRealEstate:
		return "Real Estate"
	case AssetVehicle:
		return "Vehicles"
	case AssetCrypto:
		return "Cryptocurrency"
	case AssetRetirement:
		return "Retirement Accounts"
	case AssetOther:
		return "Other"
	default:
		return string(c)
	}
}

// Asset is one row of the asset tab: a named thing of value.
// A full parse pass replaces the whole set; assets are never merged across passes.
type Asset struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category AssetCategory   `json:"category"`
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
	Updated  string          `json:"updated,omitempty"` // ISO date, "" when the sheet has none

	// SourceRow is the 0-based row index within the parsed block, kept so a
	// write-back collaborator can target the originating row. -1 when unknown.
	SourceRow int `json:"source_row"`
}

// NewAsset creates an asset with a generated identity
func NewAsset(name string) *Asset {
	return &Asset{
		ID:        uuid.New(),
		Name:      name,
		Category:  AssetOther,
		Value:     decimal.Zero,
		Currency:  "USD",
		SourceRow: -1,
	}
}
