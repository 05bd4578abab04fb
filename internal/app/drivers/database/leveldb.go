package database

import (
	"lifeledger-service/internal/app/config"
	"log"

	"github.com/syndtr/goleveldb/leveldb"
)

// NewLevelDB opens the ledger emulator's store, creating it when missing.
func NewLevelDB(driverConfig *config.DriverConfig) *leveldb.DB {
	db, err := leveldb.OpenFile(driverConfig.LevelDB.Path, nil)
	if err != nil {
		log.Fatalf("Failed to open leveldb at %s: %s", driverConfig.LevelDB.Path, err.Error())
	}
	log.Printf("Successfully opened leveldb at %s", driverConfig.LevelDB.Path)
	return db
}
