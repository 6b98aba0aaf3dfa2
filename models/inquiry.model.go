package models

import "time"

// FranchiseInquiry represents a franchise lead in the franchiseinquiry collection
type FranchiseInquiry struct {
	ID                      string     `bson:"_id,omitempty" json:"id,omitempty"`
	FullName                string     `bson:"full_name" json:"full_name"`
	Email                   string     `bson:"email" json:"email"`
	Phone                   string     `bson:"phone" json:"phone"`
	InvestmentCapacityLakhs float64    `bson:"investment_capacity_lakhs" json:"investment_capacity_lakhs"`
	PreferredCities         string     `bson:"preferred_cities" json:"preferred_cities"`
	CityTier                string     `bson:"city_tier" json:"city_tier"`
	Message                 *string    `bson:"message" json:"message"`
	OTPVerified             bool       `bson:"otp_verified" json:"otp_verified"`
	CreatedAt               *time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// Floorplan is the metadata of an uploaded floorplan
type Floorplan struct {
	Filename string `bson:"filename" json:"filename"`
	Path     string `bson:"path" json:"path"`
	Size     int64  `bson:"size" json:"size"`
}

// MallInquiry represents a mall partnership lead in the mallinquiry collection
type MallInquiry struct {
	ID                 string     `bson:"_id,omitempty" json:"id,omitempty"`
	ContactName        string     `bson:"contact_name" json:"contact_name"`
	Email              string     `bson:"email" json:"email"`
	Phone              string     `bson:"phone" json:"phone"`
	MallName           string     `bson:"mall_name" json:"mall_name"`
	LocationCity       string     `bson:"location_city" json:"location_city"`
	AvailableSpaceSqft int        `bson:"available_space_sqft" json:"available_space_sqft"`
	Message            *string    `bson:"message" json:"message"`
	HasFloorplan       bool       `bson:"has_floorplan" json:"has_floorplan"`
	Floorplan          *Floorplan `bson:"floorplan" json:"floorplan"`
	OTPVerified        bool       `bson:"otp_verified" json:"otp_verified"`
	CreatedAt          *time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
