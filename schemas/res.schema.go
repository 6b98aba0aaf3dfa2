// Package schemas contains request payloads and response bodies
package schemas

import "github.com/VinukaThejana/immerzo/models"

// Res is the common response body
type Res struct {
	Success bool     `json:"success"`
	Detail  string   `json:"detail,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// OTPStartRes is the response body of a started OTP
type OTPStartRes struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	DemoCode string `json:"demo_code,omitempty"`
}

// CreatedRes is the response body of a stored inquiry
type CreatedRes struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// MallCreatedRes is the response body of a stored mall inquiry
type MallCreatedRes struct {
	Success bool              `json:"success"`
	ID      string            `json:"id"`
	File    *models.Floorplan `json:"file"`
}
