package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/christine-ng23/bookstore-backend/internal/data/entity"
	"github.com/christine-ng23/bookstore-backend/internal/data/repository"
	"github.com/christine-ng23/bookstore-backend/pkg/apperr"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

type OrderService interface {
	// Place creates an order in status new and reserves stock for every
	// item, all inside one transaction: a failure on any item rolls back
	// the order row and every stock decrement.
	Place(ctx context.Context, userID int64, items []map[string]any) (*entity.Order, error)
	// List returns all orders for admins, own orders otherwise.
	List(ctx context.Context, userID int64, isAdmin bool) ([]*entity.Order, error)
	// UpdateStatus moves an order along the status transition graph.
	// Admins may perform any legal transition; owners may only cancel
	// their own order while it is still new.
	UpdateStatus(ctx context.Context, orderID int64, status string, userID int64, isAdmin bool) (*entity.Order, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) Place(ctx context.Context, userID int64, items []map[string]any) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, apperr.Validation("Items can not empty")
	}

	order := &entity.Order{
		UserID:    userID,
		Status:    entity.OrderStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	err := s.repo.WithinTx(ctx, func(tx *repository.Repository) error {
		// The order row is created first so items can reference its id;
		// the surrounding transaction guarantees no orphan row survives
		// a failed item.
		if err := tx.Order.Create(ctx, order); err != nil {
			return err
		}

		for _, item := range items {
			var errs []string
			utils.ValidateRequiredFields(item, []string{"book_id", "quantity"}, &errs)
			utils.ValidateFieldTypes(item, map[string]utils.FieldType{
				"book_id":  utils.TypeInt,
				"quantity": utils.TypeInt,
			}, &errs)
			if len(errs) > 0 {
				return apperr.Validation(strings.Join(errs, "; "))
			}

			utils.ValidateNonNegativeFields(item, []string{"book_id", "quantity"}, &errs)
			if len(errs) > 0 {
				return apperr.Validation(strings.Join(errs, "; "))
			}

			bookID, _ := utils.IntField(item, "book_id")
			quantity, _ := utils.IntField(item, "quantity")

			// Lock the book row so concurrent placements against the
			// same book serialize on the stock check
			book, err := tx.Book.FindByIDForUpdate(ctx, int64(bookID))
			if err != nil {
				return err
			}
			if book == nil {
				return apperr.NotFoundf("Book with id %d not found", bookID)
			}
			if book.Quantity < quantity {
				return apperr.Validationf("Book with id %d quantity not enough", bookID)
			}

			book.Quantity -= quantity
			if err := tx.Book.Update(ctx, book); err != nil {
				return err
			}

			orderItem := entity.OrderItem{
				OrderID:   order.ID,
				BookID:    int64(bookID),
				Quantity:  quantity,
				PriceEach: book.SellPrice, // price snapshot at order time
			}
			if err := tx.Order.AddItem(ctx, &orderItem); err != nil {
				return err
			}
			order.Items = append(order.Items, orderItem)
		}

		return nil
	})
	if err != nil {
		s.log.Warn("Order placement failed",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int("item_count", len(items)),
		)
		return nil, err
	}

	s.log.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Int("item_count", len(order.Items)),
	)

	return order, nil
}

func (s *orderService) List(ctx context.Context, userID int64, isAdmin bool) ([]*entity.Order, error) {
	if isAdmin {
		return s.repo.Order.FindAll(ctx)
	}
	return s.repo.Order.FindByUserID(ctx, userID)
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID int64, status string, userID int64, isAdmin bool) (*entity.Order, error) {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFoundf("Order with id %d not found", orderID)
	}

	// Validate new status value
	if !entity.ValidOrderStatus(status) {
		return nil, apperr.Validationf("status must be one of: %s", entity.OrderStatusList())
	}
	next := entity.OrderStatus(status)

	// Check for permission: owners may only cancel their own new order
	ownerCancel := order.UserID == userID &&
		next == entity.OrderStatusCanceled &&
		order.Status == entity.OrderStatusNew
	if !isAdmin && !ownerCancel {
		s.log.Warn("Unauthorized order status update",
			zap.Int64("order_id", orderID),
			zap.Int64("user_id", userID),
			zap.String("status", status),
		)
		return nil, apperr.Forbidden("You are not authorized to update this order.")
	}

	// Admins must follow the transition graph. This is a transition
	// violation, not an authorization failure.
	if isAdmin && !order.Status.CanTransitionTo(next) {
		return nil, apperr.Validationf("Cannot change status from %s to %s", order.Status, next)
	}

	if err := s.repo.Order.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}

	s.log.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("from", string(order.Status)),
		zap.String("to", status),
		zap.Bool("is_admin", isAdmin),
	)

	order.Status = next
	return order, nil
}
