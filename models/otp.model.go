package models

import "time"

// OTPState is the explicit state of an OTP request
type OTPState string

const (
	// OTPIssued denotes a code that can still be verified
	OTPIssued OTPState = "issued"
	// OTPVerified denotes a code that has been verified at least once
	OTPVerified OTPState = "verified"
	// OTPExpired denotes a code past its expiry that was never verified
	OTPExpired OTPState = "expired"
)

// OTPRequest represents an issued one time passcode in the otprequest collection
type OTPRequest struct {
	ID        string     `bson:"_id,omitempty" json:"id,omitempty"`
	Phone     string     `bson:"phone" json:"phone"`
	Purpose   string     `bson:"purpose" json:"purpose"`
	Code      string     `bson:"code" json:"code"`
	Verified  bool       `bson:"verified" json:"verified"`
	ExpiresAt time.Time  `bson:"expires_at" json:"expires_at"`
	CreatedAt *time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// State returns the state of the request at the given time, expiry is detected lazily
func (o *OTPRequest) State(now time.Time) OTPState {
	if o.Verified {
		return OTPVerified
	}
	if now.After(o.ExpiresAt) {
		return OTPExpired
	}
	return OTPIssued
}
