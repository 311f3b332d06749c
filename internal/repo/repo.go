package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRepo struct {
	DB *gorm.DB
}

// lockForUpdate adds SELECT ... FOR UPDATE where the dialect has row locks.
// SQLite serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func list[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	items := make([]T, 0)
	if err := db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func get[T any](ctx context.Context, db *gorm.DB, id int) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func create[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).Create(row).Error
}

// update locks the row, lets apply change it in memory and saves it, all in
// one transaction, so the existence check and the write cannot interleave
// with a concurrent delete.
func update[T any](ctx context.Context, db *gorm.DB, id int, apply func(*T) error) (*T, error) {
	var row T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&row, id).Error; err != nil {
			return err
		}
		if err := apply(&row); err != nil {
			return err
		}
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// remove deletes the row and returns its last values. A row deleted by a
// concurrent request yields gorm.ErrRecordNotFound.
func remove[T any](ctx context.Context, db *gorm.DB, id int) (*T, error) {
	var row T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&row, id).Error; err != nil {
			return err
		}
		res := tx.Delete(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}
