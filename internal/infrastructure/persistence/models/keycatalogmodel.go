package models

import "keybuddy/internal/shared/constants"

// KeyCatalogModel is the fabrikat/koncept reference catalog for the
// "Nyckelkort" scheme. Reseeded destructively on every migration run.
type KeyCatalogModel struct {
	ID       uint   `gorm:"primarykey"`
	Fabrikat string `gorm:"not null;size:100"`
	Koncept  string `gorm:"not null;size:100"`
}

func (KeyCatalogModel) TableName() string {
	return constants.TableKeyCatalog
}

// KeyCatalog2Model is the separate catalog for the "Standard" scheme.
type KeyCatalog2Model struct {
	ID       uint   `gorm:"primarykey"`
	Fabrikat string `gorm:"not null;size:100"`
	Koncept  string `gorm:"not null;size:100"`
}

func (KeyCatalog2Model) TableName() string {
	return constants.TableKeyCatalog2
}
