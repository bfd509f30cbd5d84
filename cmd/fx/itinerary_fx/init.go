package itinerary_fx

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travigo/internal/config"
	"travigo/internal/repositories"
	"travigo/internal/services"
	"travigo/pkg/middleware"
	"travigo/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionProvider,
	ProvideCompletionClient,
	ProvideItineraryTransformer,
	ProvideItineraryRepository,
	ProvideItineraryService,
	ProvideGenerateRateLimiter,
)

// ProvideCompletionProvider picks the AI backend from AI_PROVIDER.
func ProvideCompletionProvider(lc fx.Lifecycle, cfg config.Config, logger zerolog.Logger) (utils.CompletionProvider, error) {
	c := cfg.Completion
	logger.Info().Str("provider", c.Provider).Str("model", c.Model).Msg("initializing completion provider")

	switch c.Provider {
	case "openai":
		return utils.NewOpenAICompletionProvider(c), nil
	case "gemini":
		p, err := utils.NewGeminiCompletionProvider(context.Background(), c)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error { return p.Close() },
		})
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", c.Provider)
	}
}

func ProvideCompletionClient(cfg config.Config, provider utils.CompletionProvider, logger zerolog.Logger) utils.CompletionClientInterface {
	return utils.NewCompletionClient(cfg.Completion, provider, logger)
}

func ProvideItineraryTransformer(logger zerolog.Logger) services.ItineraryTransformerInterface {
	return services.NewItineraryTransformer(logger)
}

func ProvideItineraryRepository(db *gorm.DB) repositories.ItineraryRepositoryInterface {
	return repositories.NewItineraryRepository(db)
}

func ProvideItineraryService(
	client utils.CompletionClientInterface,
	transformer services.ItineraryTransformerInterface,
	repo repositories.ItineraryRepositoryInterface,
	logger zerolog.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(client, transformer, repo, logger)
}

func ProvideGenerateRateLimiter(cfg config.Config) *middleware.UserRateLimiter {
	return middleware.NewUserRateLimiter(cfg.GenerateRatePerMinute)
}
