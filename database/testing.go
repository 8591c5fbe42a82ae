package database

import (
	"store-monitor/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	MysqlTestUser     string = "storemonitor"
	MysqlTestPassword string = "storemonitor"
	MysqlTestHost     string = "localhost"
	MysqlTestPort     int    = 3307
)

func ConnectTestDB(cfg *config.DBConfig) (*gorm.DB, error) {
	gormConfig := gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg)),
	}
	return gorm.Open(sqlite.Open(":memory:"), &gormConfig)
}

func ConnectAndInitializeTestDB(cfg *config.DBConfig) (*gorm.DB, error) {
	db, err := ConnectTestDB(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize - auto migrate
	err = db.AutoMigrate(entities...)
	if err != nil {
		return nil, err
	}
	return db, nil
}
