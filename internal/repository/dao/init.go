package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Museum{},
		&MuseumTag{},
		&PreferenceTag{},
		&Product{},
		&Activity{},
		&Review{},
		&WishlistItem{},
		&CartItem{},
		&PurchaseRecord{},
	)
}
