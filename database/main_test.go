package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/tcgcombos/combo-backend/models"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB returns an isolated in-memory database with the full schema
// applied. A single open connection keeps concurrent writers serialized on
// one sqlite handle.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}
	return db
}

func seedDeck(t *testing.T, db *gorm.DB, name string) models.Deck {
	t.Helper()

	deck := models.Deck{Name: name, Description: "test deck", ImageURL: name + ".png"}
	if err := NewDeckRepo(db).Add(&deck); err != nil {
		t.Fatalf("Failed to seed deck: %v", err)
	}
	return deck
}

func seedCombo(t *testing.T, db *gorm.DB, deckID int64, title string) models.Combo {
	t.Helper()

	combo := models.Combo{Author: "tester", Title: title, Difficulty: "easy", DeckID: deckID}
	if err := NewComboRepo(db).Add(&combo); err != nil {
		t.Fatalf("Failed to seed combo: %v", err)
	}
	return combo
}
