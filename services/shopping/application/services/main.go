package services

import (
	"github.com/ghuser/foodkeeper/pkg/app"
	"github.com/ghuser/foodkeeper/services/shopping/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Shopping *ShoppingService
}

// New wires the shopping application service with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewShoppingItemRepository(a.Db)
	return &Services{
		Shopping: NewShoppingService(repo, a.Logger),
	}
}
