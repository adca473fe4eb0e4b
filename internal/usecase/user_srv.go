package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/christine-ng23/bookstore-backend/internal/data/entity"
	"github.com/christine-ng23/bookstore-backend/internal/data/repository"
	"github.com/christine-ng23/bookstore-backend/pkg/apperr"
	"github.com/christine-ng23/bookstore-backend/pkg/database"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"go.uber.org/zap"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

type UserService interface {
	List(ctx context.Context) ([]*entity.User, error)
	// Register creates a user account. Only callers already authenticated
	// as admin may assign a role other than user.
	Register(ctx context.Context, data map[string]any, isAdmin bool) (*entity.User, error)
	// Update changes a user's password. Username and role are immutable
	// once the account exists.
	Update(ctx context.Context, userID int64, updates map[string]any) (*entity.User, error)
	Delete(ctx context.Context, userID int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) List(ctx context.Context) ([]*entity.User, error) {
	return s.repo.User.FindAll(ctx)
}

func (s *userService) Register(ctx context.Context, data map[string]any, isAdmin bool) (*entity.User, error) {
	var errs []string
	utils.ValidateRequiredFields(data, []string{"username", "password"}, &errs)
	utils.ValidateFieldTypes(data, map[string]utils.FieldType{
		"username": utils.TypeString,
		"password": utils.TypeString,
		"role":     utils.TypeString,
	}, &errs)
	if len(errs) > 0 {
		return nil, apperr.Validation(strings.Join(errs, "; "))
	}

	username, _ := utils.StringField(data, "username")
	password, _ := utils.StringField(data, "password")
	role, hasRole := utils.StringField(data, "role")
	if !hasRole || role == "" {
		role = string(entity.RoleUser)
	}

	if !usernamePattern.MatchString(username) {
		return nil, apperr.Validation("Username format is invalid. Only letters, numbers, underscores, hyphens, and dots are allowed.")
	}
	if !entity.ValidRole(role) {
		return nil, apperr.Validation("Role must be one of: admin, user")
	}
	if role != string(entity.RoleUser) && !isAdmin {
		return nil, apperr.Forbidden("Only admin can assign roles other than 'user'")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Password: hash,
		Role:     entity.UserRole(role),
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict("A user with this username already exists.")
		}
		return nil, err
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", role),
	)

	return user, nil
}

func (s *userService) Update(ctx context.Context, userID int64, updates map[string]any) (*entity.User, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("User with id %d not found", userID)
	}

	var errs []string
	utils.ValidateNonEmptyIfPresent(updates, []string{"username", "password"}, &errs)
	utils.ValidateFieldTypes(updates, map[string]utils.FieldType{
		"username": utils.TypeString,
		"password": utils.TypeString,
		"role":     utils.TypeString,
	}, &errs)
	if len(errs) > 0 {
		return nil, apperr.Validation(strings.Join(errs, "; "))
	}

	// Only the password may change after creation
	if password, ok := utils.StringField(updates, "password"); ok {
		hash, err := utils.HashPassword(password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, err
		}
		user.Password = hash
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User updated", zap.Int64("user_id", user.ID), zap.String("username", user.Username))

	return user, nil
}

func (s *userService) Delete(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("User with id %d not found", userID)
	}

	if err := s.repo.User.Delete(ctx, userID); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, apperr.Conflict("User has existing orders and cannot be deleted")
		}
		return nil, err
	}

	s.log.Info("User deleted", zap.Int64("user_id", userID), zap.String("username", user.Username))

	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("User with username %s not found", username)
	}
	return user, nil
}
