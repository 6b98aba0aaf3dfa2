// Package enums contains enums
package enums

const (
	// SysHealth -> denotes the health status of the system
	SysHealth = "health"
	// SysHealthMsg -> denotes the custom health status message of the system
	SysHealthMsg = "system_message"

	// Franchise -> the franchise inquiry flow
	Franchise = "franchise"
	// Mall -> the mall partnership inquiry flow
	Mall = "mall"
)

// Document collections
const (
	OTPRequestCollection       = "otprequest"
	FranchiseInquiryCollection = "franchiseinquiry"
	MallInquiryCollection      = "mallinquiry"
)

// Store drivers
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Upload drivers
const (
	UploadLocal = "local"
	UploadMinio = "minio"
)

// OTP code generators
const (
	OTPFixed  = "fixed"
	OTPRandom = "random"
)
