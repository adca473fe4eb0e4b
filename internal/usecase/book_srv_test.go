package usecase_test

import (
	"context"
	"testing"

	"github.com/christine-ng23/bookstore-backend/internal/usecase"
	"github.com/christine-ng23/bookstore-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBook(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewBookService(repos.repo, testLogger())

	book, err := svc.Add(context.Background(), map[string]any{
		"code":           "GO-001",
		"name":           "The Go Programming Language",
		"publisher":      "Addison-Wesley",
		"quantity":       float64(12),
		"imported_price": 35.5,
		"sell_price":     49.9,
	})
	require.NoError(t, err)
	assert.Equal(t, "GO-001", book.Code)
	assert.Equal(t, 12, book.Quantity)
	assert.Equal(t, 49.9, book.SellPrice)
	assert.NotZero(t, book.ID)
}

func TestAddBookDerivesSellPrice(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewBookService(repos.repo, testLogger())

	book, err := svc.Add(context.Background(), map[string]any{
		"code":           "GO-002",
		"name":           "Learning Go",
		"imported_price": float64(100),
	})
	require.NoError(t, err)
	assert.Equal(t, 110.0, book.SellPrice)
}

func TestAddBookValidation(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewBookService(repos.repo, testLogger())

	tests := []struct {
		name    string
		data    map[string]any
		message string
	}{
		{
			name:    "missing code",
			data:    map[string]any{"name": "No Code"},
			message: "Missing required field: code",
		},
		{
			name:    "missing both",
			data:    map[string]any{},
			message: "Missing required field: code; Missing required field: name",
		},
		{
			name:    "quantity wrong type",
			data:    map[string]any{"code": "X", "name": "Y", "quantity": "many"},
			message: "Field 'quantity' must be of type int",
		},
		{
			name:    "fractional quantity",
			data:    map[string]any{"code": "X", "name": "Y", "quantity": 2.5},
			message: "Field 'quantity' must be of type int",
		},
		{
			name:    "negative price",
			data:    map[string]any{"code": "X", "name": "Y", "imported_price": float64(-5)},
			message: "Field 'imported_price' must be non-negative",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), tc.data)
			require.Error(t, err)
			assert.Equal(t, tc.message, err.Error())
			kind, _ := apperr.KindOf(err)
			assert.Equal(t, apperr.KindValidation, kind)
		})
	}
}

func TestAddBookDuplicateCode(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewBookService(repos.repo, testLogger())

	_, err := svc.Add(context.Background(), map[string]any{"code": "DUP", "name": "First"})
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), map[string]any{"code": "DUP", "name": "Second"})
	require.Error(t, err)
	assert.Equal(t, "A book with this code already exists.", err.Error())
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindConflict, kind)
}

func TestUpdateBook(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewBookService(repos.repo, testLogger())
	book := seedBook(t, repos, "B001", 5, 20.0)

	updated, err := svc.Update(context.Background(), book.ID, map[string]any{
		"name":     "Renamed",
		"quantity": float64(8),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 8, updated.Quantity)
	assert.Equal(t, "B001", updated.Code)
}

func TestUpdateBookRederivesSellPrice(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewBookService(repos.repo, testLogger())
	book := seedBook(t, repos, "B001", 5, 20.0)

	updated, err := svc.Update(context.Background(), book.ID, map[string]any{
		"imported_price": float64(50),
	})
	require.NoError(t, err)
	assert.Equal(t, 55.0, updated.SellPrice)

	// An explicit sell price wins over derivation
	updated, err = svc.Update(context.Background(), book.ID, map[string]any{
		"imported_price": float64(50),
		"sell_price":     float64(80),
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, updated.SellPrice)
}

func TestUpdateBookEmptyRequiredField(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewBookService(repos.repo, testLogger())
	book := seedBook(t, repos, "B001", 5, 20.0)

	_, err := svc.Update(context.Background(), book.ID, map[string]any{"code": ""})
	require.Error(t, err)
	assert.Equal(t, "Missing required field: code", err.Error())
}

func TestUpdateBookNotFound(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewBookService(repos.repo, testLogger())

	_, err := svc.Update(context.Background(), 99, map[string]any{"name": "X"})
	require.Error(t, err)
	assert.Equal(t, "Book with id 99 not found", err.Error())
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)
}

func TestDeleteBook(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewBookService(repos.repo, testLogger())
	book := seedBook(t, repos, "B001", 5, 20.0)

	deleted, err := svc.Delete(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.ID, deleted.ID)

	stored, err := repos.books.FindByID(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	_, err = svc.Delete(context.Background(), book.ID)
	require.Error(t, err)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)
}
