package db

import (
	"fmt"
	"log"

	"github.com/linskybing/consult-go/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	log.Println("Database connected")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// CreateIndexes applies the constraints AutoMigrate cannot express.
// The partial unique index is what makes duplicate-insert races on a case
// resolvable: the losing insert fails and re-reads the winner.
func CreateIndexes() error {
	return DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_tickets_open_case
		ON tickets (case_id)
		WHERE status IN ('waiting', 'active')
	`).Error
}
