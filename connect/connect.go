// Package connect is used to initialize connections to thrid party services
package connect

import (
	"github.com/VinukaThejana/immerzo/store"
	"github.com/VinukaThejana/immerzo/upload"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Connector contains various connections to thrid party serivces
type Connector struct {
	Store store.Store
	Mongo *mongo.Client
	DB    *gorm.DB
	R     *Redis
	M     *minio.Client

	Uploads upload.Storage
}
