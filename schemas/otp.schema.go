package schemas

// OTPStart is the payload used to issue a new OTP
type OTPStart struct {
	Phone   string `json:"phone" validate:"required,min=10,max=15,validate_phone"`
	Purpose string `json:"purpose" validate:"required,oneof=franchise mall"`
}

// OTPVerify is the payload used to verify an issued OTP
type OTPVerify struct {
	Phone   string `json:"phone" validate:"required"`
	Purpose string `json:"purpose" validate:"required"`
	Code    string `json:"code" validate:"required"`
}
