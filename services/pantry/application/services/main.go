package services

import (
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/ghuser/foodkeeper/pkg/app"
	"github.com/ghuser/foodkeeper/pkg/cache"
	"github.com/ghuser/foodkeeper/pkg/config"
	domainsvcs "github.com/ghuser/foodkeeper/services/pantry/domain/services"
	"github.com/ghuser/foodkeeper/services/pantry/infrastructure/estimation"
	"github.com/ghuser/foodkeeper/services/pantry/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Product *ProductService
}

// New wires all pantry application services with infrastructure from the
// Application container. The expiry estimator strategy is selected from
// configuration; the offline rule estimator is the fallback whenever the
// OpenAI strategy is unusable.
func New(a *app.Application) *Services {
	repo := postgres.NewProductRepository(a.Db, a.EventBus)
	productCache := cache.NewProductCache(a.Redis)
	estimator := newEstimator(a)
	return &Services{
		Product: NewProductService(repo, estimator, productCache, a.Logger),
	}
}

func newEstimator(a *app.Application) domainsvcs.ExpiryEstimator {
	cfg := a.Config
	if cfg == nil || cfg.ExpiryEstimator != config.StrategyOpenAI || cfg.OpenAIAPIKey == "" {
		return estimation.NewRuleEstimator()
	}

	llm, err := openai.New(
		openai.WithToken(cfg.OpenAIAPIKey),
		openai.WithModel(cfg.OpenAIModel),
	)
	if err != nil {
		a.Logger.Warn("openai estimator unavailable, using rule estimator", "error", err)
		return estimation.NewRuleEstimator()
	}
	return estimation.NewOpenAIEstimator(llm, a.Logger)
}
