package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/christine-ng23/bookstore-backend/internal/authcode"
	"github.com/christine-ng23/bookstore-backend/internal/data/repository"
	"github.com/christine-ng23/bookstore-backend/internal/dto/request"
	"github.com/christine-ng23/bookstore-backend/internal/dto/response"
	"github.com/christine-ng23/bookstore-backend/pkg/apperr"
	"github.com/christine-ng23/bookstore-backend/pkg/token"
	"github.com/christine-ng23/bookstore-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	// Authorize checks the resource owner's credentials and issues a
	// one-time authorization code bound to the username.
	Authorize(ctx context.Context, req *request.AuthorizeRequest) (*response.AuthorizeResponse, error)
	// ExchangeToken redeems an authorization code for a signed JWT.
	// The code is consumed whether or not the exchange succeeds.
	ExchangeToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	repo   *repository.Repository
	codes  authcode.Store
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, codes authcode.Store, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		codes:  codes,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Authorize(ctx context.Context, req *request.AuthorizeRequest) (*response.AuthorizeResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		s.log.Warn("Authorization failed", zap.String("username", req.Username))
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	code := uuid.NewString()
	if err := s.codes.Put(ctx, code, user.Username); err != nil {
		s.log.Error("Failed to store authorization code", zap.Error(err))
		return nil, err
	}

	s.log.Info("Authorization code issued",
		zap.String("username", user.Username),
		zap.String("redirect_uri", req.RedirectURI),
	)

	return &response.AuthorizeResponse{
		Code:        code,
		RedirectURI: fmt.Sprintf("%s?code=%s&state=xyz", req.RedirectURI, code),
	}, nil
}

func (s *authService) ExchangeToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	if req.ClientID != s.config.OAuth.ClientID || req.ClientSecret != s.config.OAuth.ClientSecret {
		s.log.Warn("Token exchange with bad client credentials", zap.String("client_id", req.ClientID))
		return nil, apperr.Unauthorized("invalid_client")
	}

	username, err := s.codes.Take(ctx, req.Code)
	if err != nil {
		if errors.Is(err, authcode.ErrCodeNotFound) {
			s.log.Warn("Token exchange with unknown or expired code")
			return nil, apperr.Unauthorized("invalid_grant")
		}
		s.log.Error("Failed to redeem authorization code", zap.Error(err))
		return nil, err
	}

	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// The account was removed between authorize and exchange
		return nil, apperr.Unauthorized("invalid_grant")
	}

	expiry := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	accessToken, err := token.Generate(s.config.JWT.Secret, user.ID, string(user.Role), expiry)
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, err
	}

	s.log.Info("Access token issued",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return &response.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int(expiry.Seconds()),
		RedirectURI: req.RedirectURI,
		Role:        string(user.Role),
	}, nil
}
