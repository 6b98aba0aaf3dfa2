package connect

import (
	"context"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/config"
	"github.com/VinukaThejana/immerzo/enums"
	"github.com/VinukaThejana/immerzo/upload"
)

// InitUploads is a function to initialize the floorplan storage selected by the enviroment,
// the minio client must be initialized first when minio is selected
func (c *Connector) InitUploads(env *config.Env) {
	if env.UploadDriver != enums.UploadMinio {
		c.Uploads = upload.NewLocal(env.UploadDir, env.UploadPublicPrefix)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploads, err := upload.NewMinio(ctx, c.M, env.MinioBucket, env.UploadPublicPrefix)
	if err != nil {
		logger.Errorf(err)
		return
	}

	c.Uploads = uploads
}
