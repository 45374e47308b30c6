package services

import (
	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/purchase/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for purchases.
type Services struct {
	Purchase *PurchaseService
}

// New wires the purchase services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewPurchaseRepository(a.Db, a.EventBus)

	timeout := DefaultTxTimeout
	if a.Config != nil {
		timeout = a.Config.PurchaseTxTimeout
	}
	return &Services{
		Purchase: NewPurchaseService(repo, a.Logger, a.Metrics, timeout),
	}
}
