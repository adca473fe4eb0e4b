package repository

import (
	"context"
	"fmt"

	"github.com/christine-ng23/bookstore-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	Book  BookRepository
	Order OrderRepository

	db  database.PgxIface
	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		Book:  NewBookRepository(db, log),
		Order: NewOrderRepository(db, log),
		db:    db,
		log:   log,
	}
}

// WithinTx runs fn against a transaction-scoped Repository, committing on
// success and rolling back on error. A Repository that is already
// transaction-scoped (or built over fakes in tests) runs fn directly.
func (r *Repository) WithinTx(ctx context.Context, fn func(*Repository) error) error {
	if r.db == nil {
		return fn(r)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txRepo := &Repository{
		User:  NewUserRepository(tx, r.log),
		Book:  NewBookRepository(tx, r.log),
		Order: NewOrderRepository(tx, r.log),
		log:   r.log,
	}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.Error("Failed to roll back transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
