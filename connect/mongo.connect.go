package connect

import (
	"context"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/config"
	"github.com/VinukaThejana/immerzo/store"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongo is a function to initialize the connection with the mongo database, the store is
// marked as unavailable when the connection cannot be established
func (c *Connector) InitMongo(env *config.Env) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(env.DSN))
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to connect to mongo")
		c.Store = store.Unavailable{}
		return
	}

	if err := client.Ping(ctx, nil); err != nil {
		logger.ErrorWithMsg(err, "Failed to ping mongo")
		c.Store = store.Unavailable{}
		return
	}

	c.Mongo = client
	c.Store = store.NewMongo(client.Database(env.DatabaseName))
}
