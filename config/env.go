package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/enums"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultBodyLimit is the largest request body accepted, floorplans included
const DefaultBodyLimit = 32 * 1024 * 1024

// Env is structure containing env variables
type Env struct {
	DevEnv               string        `mapstructure:"DEV_ENV" validate:"required,oneof=DEV PROD TEST"`
	Port                 string        `mapstructure:"PORT" validate:"required,numeric"`
	StoreDriver          string        `mapstructure:"STORE_DRIVER" validate:"required,oneof=mongo postgres memory"`
	DSN                  string        `mapstructure:"DATABASE_URL" validate:"required_unless=StoreDriver memory"`
	DatabaseName         string        `mapstructure:"DATABASE_NAME" validate:"required_if=StoreDriver mongo"`
	RedisSystemURL       string        `mapstructure:"REDIS_SYSTEM_URL" validate:"omitempty,uri"`
	UploadDriver         string        `mapstructure:"UPLOAD_DRIVER" validate:"required,oneof=local minio"`
	UploadDir            string        `mapstructure:"UPLOAD_DIR" validate:"required_if=UploadDriver local"`
	UploadPublicPrefix   string        `mapstructure:"UPLOAD_PUBLIC_PREFIX" validate:"required,startswith=/"`
	UploadBodyLimit      int           `mapstructure:"UPLOAD_BODY_LIMIT" validate:"required,gt=0"`
	MinioEndpoint        string        `mapstructure:"MINIO_ENDPOINT" validate:"required_if=UploadDriver minio"`
	MinioAPIKeyID        string        `mapstructure:"MINIO_API_KEY_ID" validate:"required_if=UploadDriver minio"`
	MinioAPIKeySecret    string        `mapstructure:"MINIO_API_KEY_SECRET" validate:"required_if=UploadDriver minio"`
	MinioBucket          string        `mapstructure:"MINIO_BUCKET" validate:"required_if=UploadDriver minio"`
	OTPGenerator         string        `mapstructure:"OTP_GENERATOR" validate:"omitempty,oneof=fixed random"`
	OTPFixedCode         string        `mapstructure:"OTP_FIXED_CODE" validate:"required,numeric,min=4,max=8"`
	OTPExposeCode        string        `mapstructure:"OTP_EXPOSE_CODE" validate:"omitempty,boolean"`
	OTPRequiredFranchise bool          `mapstructure:"OTP_REQUIRED_FRANCHISE"`
	OTPRequiredMall      bool          `mapstructure:"OTP_REQUIRED_MALL"`
	ResendAPIKey         string        `mapstructure:"RESEND_API_KEY"`
	LeadAlertEmail       string        `mapstructure:"LEAD_ALERT_EMAIL" validate:"omitempty,email"`
	FrontendURL          string        `mapstructure:"FRONTEND_URL" validate:"required"`
	AdminSecret          string        `mapstructure:"ADMIN_SECRET"`
	OTPTTL               time.Duration `mapstructure:"OTP_TTL" validate:"required"`
}

var defaults = map[string]interface{}{
	"DEV_ENV":                string(Dev),
	"PORT":                   "8000",
	"STORE_DRIVER":           enums.StoreMongo,
	"DATABASE_URL":           "",
	"DATABASE_NAME":          "",
	"REDIS_SYSTEM_URL":       "",
	"UPLOAD_DRIVER":          enums.UploadLocal,
	"UPLOAD_DIR":             filepath.Join("public", "uploads"),
	"UPLOAD_PUBLIC_PREFIX":   "/uploads",
	"UPLOAD_BODY_LIMIT":      DefaultBodyLimit,
	"MINIO_ENDPOINT":         "",
	"MINIO_API_KEY_ID":       "",
	"MINIO_API_KEY_SECRET":   "",
	"MINIO_BUCKET":           "",
	"OTP_GENERATOR":          "",
	"OTP_FIXED_CODE":         "123456",
	"OTP_EXPOSE_CODE":        "",
	"OTP_REQUIRED_FRANCHISE": false,
	"OTP_REQUIRED_MALL":      false,
	"RESEND_API_KEY":         "",
	"LEAD_ALERT_EMAIL":       "",
	"FRONTEND_URL":           "*",
	"ADMIN_SECRET":           "",
	"OTP_TTL":                "10m",
}

// Load is a function that is used to laod the env variables from the .env file in the given
// directory and the enviroment, enviroment variables take precedence
func (e *Env) Load(path string) error {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	file := filepath.Join(path, ".env")
	if _, err := os.Stat(file); err == nil {
		v.SetConfigFile(file)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	} else {
		logger.Log("No .env file found, using the enviroment")
	}

	if err := v.Unmarshal(e); err != nil {
		return err
	}

	return validator.New().Struct(e)
}

// OTPCodeGenerator returns the configured code generator, the fixed demo code is used
// unless running in production
func (e *Env) OTPCodeGenerator() string {
	if e.OTPGenerator != "" {
		return e.OTPGenerator
	}
	if GetDevEnv(e) == Prod {
		return enums.OTPRandom
	}
	return enums.OTPFixed
}

// ExposeOTPCode reports wether the issued code is echoed back to the client as demo_code
func (e *Env) ExposeOTPCode() bool {
	if e.OTPExposeCode != "" {
		expose, err := strconv.ParseBool(e.OTPExposeCode)
		return err == nil && expose
	}
	return GetDevEnv(e) != Prod
}
