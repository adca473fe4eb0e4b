package adaptor

import (
	"net/http"

	"github.com/christine-ng23/bookstore-backend/internal/dto/response"
	"github.com/christine-ng23/bookstore-backend/internal/usecase"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

type BookHandler struct {
	service usecase.BookService
	log     *zap.Logger
}

func NewBookHandler(service usecase.BookService, log *zap.Logger) *BookHandler {
	return &BookHandler{
		service: service,
		log:     log.With(zap.String("handler", "book")),
	}
}

// ListBooks handles GET /books. The catalog is public.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("Failed to list books", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.BooksToResponse(books))
}

// CreateBook handles POST /books (admin only).
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	data, err := decodeJSONMap(r)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	book, err := h.service.Add(r.Context(), data)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, response.BookToResponse(book))
}

// UpdateBook handles PUT /books/{id} (admin only).
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := idParam(r)
	if !ok {
		utils.ResponseErrorMessage(w, http.StatusNotFound, "Not found")
		return
	}

	updates, err := decodeJSONMap(r)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	book, err := h.service.Update(r.Context(), bookID, updates)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.BookToResponse(book))
}

// DeleteBook handles DELETE /books/{id} (admin only). The deleted record is
// echoed back.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := idParam(r)
	if !ok {
		utils.ResponseErrorMessage(w, http.StatusNotFound, "Not found")
		return
	}

	book, err := h.service.Delete(r.Context(), bookID)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.BookToResponse(book))
}
