package response

import (
	"github.com/christine-ng23/bookstore-backend/internal/data/entity"
)

type BookResponse struct {
	ID            int64   `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Publisher     string  `json:"publisher"`
	Quantity      int     `json:"quantity"`
	ImportedPrice float64 `json:"imported_price"`
	SellPrice     float64 `json:"sell_price"`
}

func BookToResponse(book *entity.Book) BookResponse {
	return BookResponse{
		ID:            book.ID,
		Code:          book.Code,
		Name:          book.Name,
		Publisher:     book.Publisher,
		Quantity:      book.Quantity,
		ImportedPrice: book.ImportedPrice,
		SellPrice:     book.SellPrice,
	}
}

func BooksToResponse(books []*entity.Book) []BookResponse {
	responses := make([]BookResponse, len(books))
	for i, book := range books {
		responses[i] = BookToResponse(book)
	}
	return responses
}
