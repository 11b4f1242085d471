package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/logistica-api/internal/domain/entity"
	"github.com/jhoicas/logistica-api/internal/domain/repository"
)

// SOPUseCase genera planes S&OP agregando ventas y producción por producto.
type SOPUseCase struct {
	plans      *RecordUseCase[entity.SOPPlan, *entity.SOPPlan]
	sales      repository.RecordRepository[entity.Sale, *entity.Sale]
	production repository.RecordRepository[entity.Production, *entity.Production]
}

// NewSOPUseCase construye el caso de uso.
func NewSOPUseCase(
	plans *RecordUseCase[entity.SOPPlan, *entity.SOPPlan],
	sales repository.RecordRepository[entity.Sale, *entity.Sale],
	production repository.RecordRepository[entity.Production, *entity.Production],
) *SOPUseCase {
	return &SOPUseCase{plans: plans, sales: sales, production: production}
}

// Generate arma un plan con la demanda observada (unidades vendidas por
// producto) y la capacidad observada (unidades producidas por producto),
// sobre los últimos registros de cada colección (tope de 100, como todo
// listado), lo persiste y lo devuelve.
func (uc *SOPUseCase) Generate(ctx context.Context) (*entity.SOPPlan, error) {
	sales, err := uc.sales.List(ctx, listCap)
	if err != nil {
		return nil, err
	}
	production, err := uc.production.List(ctx, listCap)
	if err != nil {
		return nil, err
	}

	demand := make(map[string]int)
	for _, s := range sales {
		demand[s.ProductID] += s.QuantitySold
	}
	capacity := make(map[string]int)
	for _, p := range production {
		capacity[p.ProductID] += p.QuantityProduced
	}

	plan := &entity.SOPPlan{
		ForecastedDemand:   demand,
		ProductionCapacity: capacity,
		Period:             time.Now(),
		RevisionNumber:     1,
	}
	return uc.plans.Create(ctx, plan)
}
