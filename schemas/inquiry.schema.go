package schemas

import "github.com/VinukaThejana/immerzo/models"

// FranchisePayload is the franchise inquiry submitted by the client
type FranchisePayload struct {
	FullName                string   `json:"full_name" validate:"required"`
	Email                   string   `json:"email" validate:"required,email"`
	Phone                   string   `json:"phone" validate:"required,validate_phone"`
	InvestmentCapacityLakhs *float64 `json:"investment_capacity_lakhs" validate:"required,gte=0"`
	PreferredCities         string   `json:"preferred_cities" validate:"required"`
	CityTier                string   `json:"city_tier" validate:"required,validate_city_tier"`
	Message                 *string  `json:"message"`
	OTPCode                 *string  `json:"otp_code"`
}

// Inquiry converts the payload to the stored document, the otp code is not kept
func (p FranchisePayload) Inquiry(otpVerified bool) models.FranchiseInquiry {
	var capacity float64
	if p.InvestmentCapacityLakhs != nil {
		capacity = *p.InvestmentCapacityLakhs
	}

	return models.FranchiseInquiry{
		FullName:                p.FullName,
		Email:                   p.Email,
		Phone:                   p.Phone,
		InvestmentCapacityLakhs: capacity,
		PreferredCities:         p.PreferredCities,
		CityTier:                p.CityTier,
		Message:                 p.Message,
		OTPVerified:             otpVerified,
	}
}

// MallPayload is the mall partnership inquiry submitted as multipart form fields
type MallPayload struct {
	ContactName        string  `form:"contact_name" validate:"required"`
	Email              string  `form:"email" validate:"required,email"`
	Phone              string  `form:"phone" validate:"required,validate_phone"`
	MallName           string  `form:"mall_name" validate:"required"`
	LocationCity       string  `form:"location_city" validate:"required"`
	AvailableSpaceSqft *int    `form:"available_space_sqft" validate:"required,gte=0"`
	Message            *string `form:"message"`
	OTPCode            *string `form:"otp_code"`
}

// Inquiry converts the payload to the stored document
func (p MallPayload) Inquiry(otpVerified bool, floorplan *models.Floorplan) models.MallInquiry {
	var space int
	if p.AvailableSpaceSqft != nil {
		space = *p.AvailableSpaceSqft
	}

	return models.MallInquiry{
		ContactName:        p.ContactName,
		Email:              p.Email,
		Phone:              p.Phone,
		MallName:           p.MallName,
		LocationCity:       p.LocationCity,
		AvailableSpaceSqft: space,
		Message:            p.Message,
		HasFloorplan:       floorplan != nil,
		Floorplan:          floorplan,
		OTPVerified:        otpVerified,
	}
}
