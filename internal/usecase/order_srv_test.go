package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/christine-ng23/bookstore-backend/internal/data/entity"
	"github.com/christine-ng23/bookstore-backend/internal/usecase"
	"github.com/christine-ng23/bookstore-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBook(t *testing.T, repos *testRepos, code string, quantity int, sellPrice float64) *entity.Book {
	t.Helper()
	book := &entity.Book{
		Code:      code,
		Name:      "Book " + code,
		Quantity:  quantity,
		SellPrice: sellPrice,
	}
	require.NoError(t, repos.books.Create(context.Background(), book))
	return book
}

func seedOrder(t *testing.T, repos *testRepos, userID int64, status entity.OrderStatus) *entity.Order {
	t.Helper()
	order := &entity.Order{UserID: userID, Status: status}
	require.NoError(t, repos.orders.Create(context.Background(), order))
	return order
}

func TestPlaceOrder(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewOrderService(repos.repo, testLogger())
	book := seedBook(t, repos, "B001", 10, 55.0)

	order, err := svc.Place(context.Background(), 7, []map[string]any{
		{"book_id": float64(book.ID), "quantity": float64(3)},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusNew, order.Status)
	assert.Equal(t, int64(7), order.UserID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, book.ID, order.Items[0].BookID)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, 55.0, order.Items[0].PriceEach)

	stocked, err := repos.books.FindByID(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stocked.Quantity)
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewOrderService(repos.repo, testLogger())

	_, err := svc.Place(context.Background(), 1, nil)
	require.Error(t, err)
	assert.Equal(t, "Items can not empty", err.Error())
	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, kind)
}

func TestPlaceOrderUnknownBook(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewOrderService(repos.repo, testLogger())

	_, err := svc.Place(context.Background(), 1, []map[string]any{
		{"book_id": float64(99), "quantity": float64(1)},
	})
	require.Error(t, err)
	assert.Equal(t, "Book with id 99 not found", err.Error())
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewOrderService(repos.repo, testLogger())
	book := seedBook(t, repos, "B001", 2, 10.0)

	_, err := svc.Place(context.Background(), 1, []map[string]any{
		{"book_id": float64(book.ID), "quantity": float64(5)},
	})
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("Book with id %d quantity not enough", book.ID), err.Error())

	// Stock untouched after the failed placement
	stocked, err := repos.books.FindByID(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stocked.Quantity)
}

func TestPlaceOrderExactStockThenDepleted(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewOrderService(repos.repo, testLogger())
	book := seedBook(t, repos, "B001", 10, 10.0)

	items := []map[string]any{{"book_id": float64(book.ID), "quantity": float64(10)}}

	_, err := svc.Place(context.Background(), 1, items)
	require.NoError(t, err)

	stocked, err := repos.books.FindByID(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stocked.Quantity)

	_, err = svc.Place(context.Background(), 1, items)
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("Book with id %d quantity not enough", book.ID), err.Error())
}

func TestPlaceOrderItemValidation(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewOrderService(repos.repo, testLogger())
	book := seedBook(t, repos, "B001", 10, 10.0)

	tests := []struct {
		name    string
		item    map[string]any
		message string
	}{
		{
			name:    "missing quantity",
			item:    map[string]any{"book_id": float64(book.ID)},
			message: "Missing required field: quantity",
		},
		{
			name:    "missing book_id",
			item:    map[string]any{"quantity": float64(1)},
			message: "Missing required field: book_id",
		},
		{
			name:    "non-integer quantity",
			item:    map[string]any{"book_id": float64(book.ID), "quantity": 1.5},
			message: "Field 'quantity' must be of type int",
		},
		{
			name:    "string book_id",
			item:    map[string]any{"book_id": "1", "quantity": float64(1)},
			message: "Field 'book_id' must be of type int",
		},
		{
			name:    "negative quantity",
			item:    map[string]any{"book_id": float64(book.ID), "quantity": float64(-2)},
			message: "Field 'quantity' must be non-negative",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Place(context.Background(), 1, []map[string]any{tc.item})
			require.Error(t, err)
			assert.Equal(t, tc.message, err.Error())
			kind, _ := apperr.KindOf(err)
			assert.Equal(t, apperr.KindValidation, kind)
		})
	}
}

func TestListOrdersScoping(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewOrderService(repos.repo, testLogger())
	seedOrder(t, repos, 1, entity.OrderStatusNew)
	seedOrder(t, repos, 2, entity.OrderStatusNew)
	seedOrder(t, repos, 1, entity.OrderStatusDelivered)

	own, err := svc.List(context.Background(), 1, false)
	require.NoError(t, err)
	assert.Len(t, own, 2)
	for _, order := range own {
		assert.Equal(t, int64(1), order.UserID)
	}

	all, err := svc.List(context.Background(), 1, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		from    entity.OrderStatus
		to      entity.OrderStatus
		allowed bool
	}{
		{entity.OrderStatusNew, entity.OrderStatusProcessing, true},
		{entity.OrderStatusNew, entity.OrderStatusCanceled, true},
		{entity.OrderStatusNew, entity.OrderStatusRejected, true},
		{entity.OrderStatusNew, entity.OrderStatusShipping, false},
		{entity.OrderStatusNew, entity.OrderStatusDelivered, false},
		{entity.OrderStatusProcessing, entity.OrderStatusShipping, true},
		{entity.OrderStatusProcessing, entity.OrderStatusRejected, true},
		{entity.OrderStatusProcessing, entity.OrderStatusCanceled, false},
		{entity.OrderStatusShipping, entity.OrderStatusDelivered, true},
		{entity.OrderStatusShipping, entity.OrderStatusRejected, false},
		{entity.OrderStatusDelivered, entity.OrderStatusNew, false},
		{entity.OrderStatusCanceled, entity.OrderStatusProcessing, false},
		{entity.OrderStatusRejected, entity.OrderStatusNew, false},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s_to_%s", tc.from, tc.to), func(t *testing.T) {
			repos := newTestRepos()
			svc := usecase.NewOrderService(repos.repo, testLogger())
			order := seedOrder(t, repos, 1, tc.from)

			updated, err := svc.UpdateStatus(context.Background(), order.ID, string(tc.to), 9, true)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, updated.Status)

				stored, err := repos.orders.FindByID(context.Background(), order.ID)
				require.NoError(t, err)
				assert.Equal(t, tc.to, stored.Status)
			} else {
				require.Error(t, err)
				assert.Equal(t, fmt.Sprintf("Cannot change status from %s to %s", tc.from, tc.to), err.Error())
				kind, _ := apperr.KindOf(err)
				assert.Equal(t, apperr.KindValidation, kind)
			}
		})
	}
}

func TestUpdateStatusOwnerCancel(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewOrderService(repos.repo, testLogger())
	order := seedOrder(t, repos, 5, entity.OrderStatusNew)

	updated, err := svc.UpdateStatus(context.Background(), order.ID, "canceled", 5, false)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCanceled, updated.Status)
}

func TestUpdateStatusOwnerForbidden(t *testing.T) {
	tests := []struct {
		name   string
		owner  int64
		caller int64
		from   entity.OrderStatus
		to     string
	}{
		{"other user's order", 5, 6, entity.OrderStatusNew, "canceled"},
		{"own order but not cancel", 5, 5, entity.OrderStatusNew, "processing"},
		{"own order past new", 5, 5, entity.OrderStatusProcessing, "canceled"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repos := newTestRepos()
			svc := usecase.NewOrderService(repos.repo, testLogger())
			order := seedOrder(t, repos, tc.owner, tc.from)

			_, err := svc.UpdateStatus(context.Background(), order.ID, tc.to, tc.caller, false)
			require.Error(t, err)
			assert.Equal(t, "You are not authorized to update this order.", err.Error())
			kind, _ := apperr.KindOf(err)
			assert.Equal(t, apperr.KindForbidden, kind)

			// Status untouched
			stored, err := repos.orders.FindByID(context.Background(), order.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.from, stored.Status)
		})
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewOrderService(repos.repo, testLogger())

	_, err := svc.UpdateStatus(context.Background(), 42, "processing", 1, true)
	require.Error(t, err)
	assert.Equal(t, "Order with id 42 not found", err.Error())
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	repos := newTestRepos()
	svc := usecase.NewOrderService(repos.repo, testLogger())
	order := seedOrder(t, repos, 1, entity.OrderStatusNew)

	_, err := svc.UpdateStatus(context.Background(), order.ID, "shipped", 1, true)
	require.Error(t, err)
	assert.Equal(t, "status must be one of: canceled, delivered, new, processing, rejected, shipping", err.Error())
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)
}
