package services

import (
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/ghuser/foodkeeper/pkg/app"
	"github.com/ghuser/foodkeeper/pkg/config"
	pantrypostgres "github.com/ghuser/foodkeeper/services/pantry/infrastructure/persistence/postgres"
	domainsvcs "github.com/ghuser/foodkeeper/services/suggestion/domain/services"
	"github.com/ghuser/foodkeeper/services/suggestion/infrastructure/generation"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Suggestion *SuggestionService
}

// New wires the suggestion application service with infrastructure from the
// Application container. Suggestions read the pantry's product store
// directly; there is no separate suggestion persistence. The generator
// strategy is selected from configuration with the rule catalog as fallback.
func New(a *app.Application) *Services {
	products := pantrypostgres.NewProductRepository(a.Db, a.EventBus)
	generator := newGenerator(a)
	return &Services{
		Suggestion: NewSuggestionService(products, generator, a.Logger),
	}
}

func newGenerator(a *app.Application) domainsvcs.SuggestionGenerator {
	cfg := a.Config
	if cfg == nil || cfg.SuggestionGen != config.StrategyOpenAI || cfg.OpenAIAPIKey == "" {
		return generation.NewRuleGenerator()
	}

	llm, err := openai.New(
		openai.WithToken(cfg.OpenAIAPIKey),
		openai.WithModel(cfg.OpenAIModel),
	)
	if err != nil {
		a.Logger.Warn("openai generator unavailable, using rule generator", "error", err)
		return generation.NewRuleGenerator()
	}
	return generation.NewOpenAIGenerator(llm, a.Logger)
}
