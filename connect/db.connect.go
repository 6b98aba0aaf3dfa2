package connect

import (
	"fmt"
	"os"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/config"
	"github.com/VinukaThejana/immerzo/enums"
	"github.com/VinukaThejana/immerzo/models"
	"github.com/VinukaThejana/immerzo/store"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// InitStore is a function to initialize the document store selected by the enviroment
func (c *Connector) InitStore(env *config.Env) {
	switch env.StoreDriver {
	case enums.StoreMemory:
		logger.Log("⚠️  Using in-memory storage (not for production!)")
		c.Store = store.NewMemory()
	case enums.StorePostgres:
		c.InitDatabase(env)
	default:
		c.InitMongo(env)
	}
}

// InitDatabase is a fucntion to initialize the connection with the postgres database
func (c *Connector) InitDatabase(env *config.Env) {
	db, err := gorm.Open(postgres.Open(env.DSN), &gorm.Config{})
	if err != nil {
		logger.ErrorWithMsg(err, "Failed to connect to postgres")
		c.Store = store.Unavailable{}
		return
	}

	if config.GetDevEnv(env) != config.Prod {
		db.Logger = gormLogger.Default.LogMode(gormLogger.Info)
	}

	c.DB = db
	c.Store = store.NewPostgres(db)
}

// MigrateSchemaChanges is a fucntion that is used to migrate schema changes to the database
func (c *Connector) MigrateSchemaChanges(env *config.Env) {
	if env.StoreDriver != enums.StorePostgres || c.DB == nil {
		logger.Error(fmt.Errorf(" ❌ Migrations are only available for the postgres store ! "))
		os.Exit(0)
	}

	migrations := []interface{}{
		models.Document{},
	}

	c.DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"")

	err := c.DB.AutoMigrate(migrations...)
	if err != nil {
		logger.Errorf(err)
	}

	c.DB.Exec("CREATE INDEX IF NOT EXISTS idx_documents_data ON documents USING GIN (data jsonb_path_ops)")

	logger.Log("\n\n ✅ All schema changes have been migrated !")
}
