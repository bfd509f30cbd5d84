package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"travigo/internal/models/db_models"
	"travigo/internal/models/request_models"
	"travigo/internal/models/response_models"
	"travigo/internal/repositories"
	mem "travigo/pkg/memcache"
	"travigo/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountLoginResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetPreferences(ctx context.Context, userID string) (*db_models.AccountPreferences, error)
	UpdatePreferences(ctx context.Context, userID string, request request_models.UpdatePreferencesRequest) (*db_models.AccountPreferences, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwtManager  *utils.JWTManager
	revoked     mem.RevokedTokenStore
	logger      zerolog.Logger
	now         func() time.Time
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	jwtManager *utils.JWTManager,
	revoked mem.RevokedTokenStore,
	logger zerolog.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwtManager:  jwtManager,
		revoked:     revoked,
		logger:      logger.With().Str("component", "account_service").Logger(),
		now:         time.Now,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountLoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		a.logger.Error().Err(err).Msg("lookup account by email failed")
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		Phone:        strings.TrimSpace(request.Phone),
		PasswordHash: hashedPassword,
		Preferences:  db_models.DefaultPreferences(),
	}
	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, utils.ErrEmailAlreadyExists
		}
		a.logger.Error().Err(err).Msg("insert account failed")
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info().Str("user_id", newAccount.ID.String()).Msg("user registered")
	return a.loginResponse(newAccount)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		a.logger.Error().Err(err).Msg("lookup account by email failed")
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.loginResponse(account)
}

func (a *AccountService) loginResponse(account *db_models.Account) (*response_models.AccountLoginResponse, error) {
	token, err := a.jwtManager.CreateToken(account.ID.String())
	if err != nil {
		return nil, err
	}
	return &response_models.AccountLoginResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Phone: account.Phone,
		Token: token,
	}, nil
}

// Logout revokes the token until its own expiry; an already expired token needs nothing.
func (a *AccountService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return utils.ErrUnauthorized
	}
	return a.revoked.Revoke(ctx, tokenID, expiresAt.Sub(a.now()))
}

func (a *AccountService) GetPreferences(ctx context.Context, userID string) (*db_models.AccountPreferences, error) {
	account, err := a.findAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &account.Preferences, nil
}

func (a *AccountService) UpdatePreferences(ctx context.Context, userID string, request request_models.UpdatePreferencesRequest) (*db_models.AccountPreferences, error) {
	travelStyle := strings.TrimSpace(request.TravelStyle)
	if len(request.Interests) == 0 && travelStyle == "" {
		return nil, utils.NewValidationError("interests", "travelStyle")
	}

	account, err := a.findAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs := account.Preferences
	if len(request.Interests) > 0 {
		prefs.Interests = request.Interests
	}
	if travelStyle != "" {
		prefs.TravelType = travelStyle
	}

	if err := a.accountRepo.UpdatePreferences(ctx, userID, prefs); err != nil {
		a.logger.Error().Err(err).Str("user_id", userID).Msg("update preferences failed")
		return nil, utils.ErrDatabaseError
	}
	return &prefs, nil
}

func (a *AccountService) findAccount(ctx context.Context, userID string) (*db_models.Account, error) {
	if userID == "" {
		return nil, utils.ErrUnauthorized
	}
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}
