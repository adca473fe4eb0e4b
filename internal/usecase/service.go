package usecase

import (
	"github.com/christine-ng23/bookstore-backend/internal/data/repository"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

// Service groups the resource server services. The auth server builds its
// AuthService separately via NewAuthService.
type Service struct {
	User  UserService
	Book  BookService
	Order OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		User:  NewUserService(repo, log),
		Book:  NewBookService(repo, log),
		Order: NewOrderService(repo, log),
	}
}
