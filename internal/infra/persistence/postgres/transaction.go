// Package postgres implements the persistence layer on GORM and PostgreSQL.
package postgres

import (
	"context"

	"chaincast/internal/domain/repository"
	"chaincast/internal/errors"

	"gorm.io/gorm"
)

// txRepositoryFactory hands out repositories bound to one open transaction.
// A GORM transaction handle is itself a *gorm.DB.
type txRepositoryFactory struct {
	tx *gorm.DB
}

func (f *txRepositoryFactory) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

// gormTransactionManager implements repository.TransactionManager on GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager wires the GORM-backed transaction manager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute opens a transaction, runs fn with repositories bound to it, and
// commits or rolls back depending on fn's result. A panic inside fn rolls
// the transaction back before propagating.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&txRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Keep the business error as the cause so errors.Is still matches.
			return errors.Wrapf(err, "rollback after failure also failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "commit transaction")
	}

	return nil
}
