package repository

import (
	"context"
	"fmt"

	"github.com/christine-ng23/bookstore-backend/internal/data/entity"
	"github.com/christine-ng23/bookstore-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	FindByID(ctx context.Context, id int64) (*entity.Book, error)
	// FindByIDForUpdate locks the book row for the rest of the enclosing
	// transaction, so concurrent stock decrements serialize.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Book, error)
	FindAll(ctx context.Context) ([]*entity.Book, error)
	Update(ctx context.Context, book *entity.Book) error
	Delete(ctx context.Context, id int64) error
}

type bookRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookRepository(db database.Querier, log *zap.Logger) BookRepository {
	return &bookRepository{
		db:  db,
		log: log,
	}
}

func (br *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	query := `
		INSERT INTO books (code, name, publisher, quantity, imported_price, sell_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := br.db.QueryRow(ctx, query,
		book.Code,
		book.Name,
		book.Publisher,
		book.Quantity,
		book.ImportedPrice,
		book.SellPrice,
	).Scan(&book.ID)

	if err != nil {
		br.log.Error("Failed to create book",
			zap.Error(err),
			zap.String("code", book.Code),
		)
		return fmt.Errorf("create book %s: %w", book.Code, err)
	}

	return nil
}

func (br *bookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	return br.findByID(ctx, id, false)
}

func (br *bookRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Book, error) {
	return br.findByID(ctx, id, true)
}

func (br *bookRepository) findByID(ctx context.Context, id int64, forUpdate bool) (*entity.Book, error) {
	query := `
		SELECT id, code, name, publisher, quantity, imported_price, sell_price
		FROM books
		WHERE id = $1
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var book entity.Book
	err := br.db.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.Code,
		&book.Name,
		&book.Publisher,
		&book.Quantity,
		&book.ImportedPrice,
		&book.SellPrice,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find book by ID",
			zap.Error(err),
			zap.Int64("book_id", id),
		)
		return nil, fmt.Errorf("find book by ID %d: %w", id, err)
	}

	return &book, nil
}

func (br *bookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	query := `
		SELECT id, code, name, publisher, quantity, imported_price, sell_price
		FROM books
		ORDER BY id
	`

	rows, err := br.db.Query(ctx, query)
	if err != nil {
		br.log.Error("Failed to get all books", zap.Error(err))
		return nil, fmt.Errorf("find all books: %w", err)
	}
	defer rows.Close()

	var books []*entity.Book
	for rows.Next() {
		var book entity.Book
		err := rows.Scan(
			&book.ID,
			&book.Code,
			&book.Name,
			&book.Publisher,
			&book.Quantity,
			&book.ImportedPrice,
			&book.SellPrice,
		)
		if err != nil {
			br.log.Error("Failed to scan book row", zap.Error(err))
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, &book)
	}

	if err := rows.Err(); err != nil {
		br.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate books rows: %w", err)
	}

	return books, nil
}

func (br *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	query := `
		UPDATE books
		SET code = $2, name = $3, publisher = $4, quantity = $5,
		    imported_price = $6, sell_price = $7
		WHERE id = $1
	`

	result, err := br.db.Exec(ctx, query,
		book.ID,
		book.Code,
		book.Name,
		book.Publisher,
		book.Quantity,
		book.ImportedPrice,
		book.SellPrice,
	)

	if err != nil {
		br.log.Error("Failed to update book",
			zap.Error(err),
			zap.Int64("book_id", book.ID),
		)
		return fmt.Errorf("update book %d: %w", book.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("book %d not found", book.ID)
	}

	return nil
}

func (br *bookRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM books WHERE id = $1`

	result, err := br.db.Exec(ctx, query, id)
	if err != nil {
		br.log.Error("Failed to delete book",
			zap.Error(err),
			zap.Int64("id", id),
		)
		return fmt.Errorf("delete book %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("book %d not found", id)
	}

	return nil
}
