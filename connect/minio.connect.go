package connect

import (
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/config"
	"github.com/VinukaThejana/immerzo/enums"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// InitMinioClient is a function that is used to initialize minio client
func (c *Connector) InitMinioClient(env *config.Env) {
	if env.UploadDriver != enums.UploadMinio {
		return
	}

	useSSL := config.GetDevEnv(env) != config.Dev

	client, err := minio.New(env.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(env.MinioAPIKeyID, env.MinioAPIKeySecret, ""),
		Secure: useSSL,
	})
	if err != nil {
		logger.Errorf(err)
	}

	c.M = client
}
