package usecase

import (
	"context"
	"strings"

	"github.com/christine-ng23/bookstore-backend/internal/data/entity"
	"github.com/christine-ng23/bookstore-backend/internal/data/repository"
	"github.com/christine-ng23/bookstore-backend/pkg/apperr"
	"github.com/christine-ng23/bookstore-backend/pkg/database"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

type BookService interface {
	List(ctx context.Context) ([]*entity.Book, error)
	Add(ctx context.Context, data map[string]any) (*entity.Book, error)
	Update(ctx context.Context, bookID int64, updates map[string]any) (*entity.Book, error)
	Delete(ctx context.Context, bookID int64) (*entity.Book, error)
}

type bookService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookService(repo *repository.Repository, log *zap.Logger) BookService {
	return &bookService{
		repo: repo,
		log:  log.With(zap.String("service", "book")),
	}
}

// validateBookData aggregates field violations: required (or
// non-empty-if-present) and type checks first, value-range checks after.
func validateBookData(data map[string]any, isCreate bool) error {
	var errs []string
	if isCreate {
		utils.ValidateRequiredFields(data, []string{"code", "name"}, &errs)
	} else {
		utils.ValidateNonEmptyIfPresent(data, []string{"code", "name"}, &errs)
	}

	utils.ValidateFieldTypes(data, map[string]utils.FieldType{
		"code":           utils.TypeString,
		"name":           utils.TypeString,
		"publisher":      utils.TypeString,
		"quantity":       utils.TypeInt,
		"imported_price": utils.TypeNumber,
		"sell_price":     utils.TypeNumber,
	}, &errs)
	if len(errs) > 0 {
		return apperr.Validation(strings.Join(errs, "; "))
	}

	utils.ValidateNonNegativeFields(data, []string{"quantity", "imported_price", "sell_price"}, &errs)
	if len(errs) > 0 {
		return apperr.Validation(strings.Join(errs, "; "))
	}

	return nil
}

func (s *bookService) List(ctx context.Context) ([]*entity.Book, error) {
	return s.repo.Book.FindAll(ctx)
}

func (s *bookService) Add(ctx context.Context, data map[string]any) (*entity.Book, error) {
	if err := validateBookData(data, true); err != nil {
		s.log.Warn("Add book validation failed", zap.Error(err))
		return nil, err
	}

	book := &entity.Book{}
	book.Code, _ = utils.StringField(data, "code")
	book.Name, _ = utils.StringField(data, "name")
	book.Publisher, _ = utils.StringField(data, "publisher")
	book.Quantity, _ = utils.IntField(data, "quantity")
	book.ImportedPrice, _ = utils.NumberField(data, "imported_price")
	book.SellPrice, _ = utils.NumberField(data, "sell_price")

	// Derive sell price from imported price when not given
	if book.SellPrice == 0 && book.ImportedPrice != 0 {
		book.SellPrice = entity.DeriveSellPrice(book.ImportedPrice)
	}

	if err := s.repo.Book.Create(ctx, book); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict("A book with this code already exists.")
		}
		return nil, err
	}

	s.log.Info("Book added",
		zap.Int64("book_id", book.ID),
		zap.String("code", book.Code),
		zap.Float64("sell_price", book.SellPrice),
	)

	return book, nil
}

func (s *bookService) Update(ctx context.Context, bookID int64, updates map[string]any) (*entity.Book, error) {
	book, err := s.repo.Book.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFoundf("Book with id %d not found", bookID)
	}

	if err := validateBookData(updates, false); err != nil {
		s.log.Warn("Update book validation failed", zap.Error(err), zap.Int64("book_id", bookID))
		return nil, err
	}

	if code, ok := utils.StringField(updates, "code"); ok {
		book.Code = code
	}
	if name, ok := utils.StringField(updates, "name"); ok {
		book.Name = name
	}
	if publisher, ok := utils.StringField(updates, "publisher"); ok {
		book.Publisher = publisher
	}
	if quantity, ok := utils.IntField(updates, "quantity"); ok {
		book.Quantity = quantity
	}
	if importedPrice, ok := utils.NumberField(updates, "imported_price"); ok {
		book.ImportedPrice = importedPrice
	}
	if sellPrice, ok := utils.NumberField(updates, "sell_price"); ok {
		book.SellPrice = sellPrice
	}

	// Re-derive sell price only when imported price changed without an
	// explicit sell price
	if _, hasImported := updates["imported_price"]; hasImported {
		if _, hasSell := updates["sell_price"]; !hasSell {
			book.SellPrice = entity.DeriveSellPrice(book.ImportedPrice)
		}
	}

	if err := s.repo.Book.Update(ctx, book); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict("A book with this code already exists.")
		}
		return nil, err
	}

	s.log.Info("Book updated", zap.Int64("book_id", book.ID), zap.String("code", book.Code))

	return book, nil
}

func (s *bookService) Delete(ctx context.Context, bookID int64) (*entity.Book, error) {
	book, err := s.repo.Book.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFoundf("Book with id %d not found", bookID)
	}

	if err := s.repo.Book.Delete(ctx, bookID); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, apperr.Conflict("Book is referenced by existing orders and cannot be deleted")
		}
		return nil, err
	}

	s.log.Info("Book deleted", zap.Int64("book_id", bookID), zap.String("code", book.Code))

	return book, nil
}
