package database

import (
	"github.com/tcgcombos/combo-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	deckRepo       *DeckRepo
	comboRepo      *ComboRepo
	tagRepo        *TagRepo
	cardRepo       *CardRepo
	stepRepo       *StepRepo
	stepTargetRepo *StepTargetRepo
	comboLinkRepo  *ComboLinkRepo
	comboBuilder   *ComboBuilder
	comboViews     *ComboViews
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		deckRepo:       NewDeckRepo(db),
		comboRepo:      NewComboRepo(db),
		tagRepo:        NewTagRepo(db),
		cardRepo:       NewCardRepo(db),
		stepRepo:       NewStepRepo(db),
		stepTargetRepo: NewStepTargetRepo(db),
		comboLinkRepo:  NewComboLinkRepo(db),
		comboBuilder:   NewComboBuilder(db),
		comboViews:     NewComboViews(db),
	}
}

// Accessor methods for each repository

func (d Database) DeckRepo() *DeckRepo {
	return d.deckRepo
}

func (d Database) ComboRepo() *ComboRepo {
	return d.comboRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) CardRepo() *CardRepo {
	return d.cardRepo
}

func (d Database) StepRepo() *StepRepo {
	return d.stepRepo
}

func (d Database) StepTargetRepo() *StepTargetRepo {
	return d.stepTargetRepo
}

func (d Database) ComboLinkRepo() *ComboLinkRepo {
	return d.comboLinkRepo
}

func (d Database) ComboBuilder() *ComboBuilder {
	return d.comboBuilder
}

func (d Database) ComboViews() *ComboViews {
	return d.comboViews
}

// Migrate creates or updates the schema for every entity, parents before
// children so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Card{},
		&models.Deck{},
		&models.Tag{},
		&models.Combo{},
		&models.ComboTag{},
		&models.StartingHandCard{},
		&models.FinalBoardCard{},
		&models.Step{},
		&models.StepTarget{},
		&models.DeckKeyCard{},
		&models.DeckDanger{},
		&models.DeckDangerResponse{},
	)
}
