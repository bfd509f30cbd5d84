package account_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travigo/internal/repositories"
	"travigo/internal/services"
	mem "travigo/pkg/memcache"
	"travigo/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	jwtManager *utils.JWTManager,
	revoked mem.RevokedTokenStore,
	logger zerolog.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, jwtManager, revoked, logger)
}
