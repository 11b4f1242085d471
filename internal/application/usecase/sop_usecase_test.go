package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/logistica-api/internal/application/usecase"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

func buildSOPUC() (*usecase.SOPUseCase, *fakeRecordRepo[entity.Sale, *entity.Sale], *fakeRecordRepo[entity.Production, *entity.Production], *fakeRecordRepo[entity.SOPPlan, *entity.SOPPlan]) {
	sales := newFakeRecordRepo[entity.Sale, *entity.Sale]()
	production := newFakeRecordRepo[entity.Production, *entity.Production]()
	plans := newFakeRecordRepo[entity.SOPPlan, *entity.SOPPlan]()
	uc := usecase.NewSOPUseCase(usecase.NewRecordUseCase(plans), sales, production)
	return uc, sales, production, plans
}

func stampSale(s *entity.Sale, id string) *entity.Sale {
	s.ID = id
	return s
}

func stampProduction(p *entity.Production, id string) *entity.Production {
	p.ID = id
	return p
}

func TestSOPGenerate_AgregaPorProducto(t *testing.T) {
	uc, sales, production, plans := buildSOPUC()

	require.NoError(t, sales.Create(context.Background(), stampSale(&entity.Sale{ProductID: "p1", QuantitySold: 10}, "s1")))
	require.NoError(t, sales.Create(context.Background(), stampSale(&entity.Sale{ProductID: "p1", QuantitySold: 5}, "s2")))
	require.NoError(t, sales.Create(context.Background(), stampSale(&entity.Sale{ProductID: "p2", QuantitySold: 7}, "s3")))
	require.NoError(t, production.Create(context.Background(), stampProduction(&entity.Production{ProductID: "p1", QuantityProduced: 12}, "pr1")))
	require.NoError(t, production.Create(context.Background(), stampProduction(&entity.Production{ProductID: "p3", QuantityProduced: 4}, "pr2")))

	plan, err := uc.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"p1": 15, "p2": 7}, plan.ForecastedDemand,
		"la demanda suma unidades vendidas por producto")
	assert.Equal(t, map[string]int{"p1": 12, "p3": 4}, plan.ProductionCapacity,
		"la capacidad suma unidades producidas por producto")
	assert.Equal(t, 1, plan.RevisionNumber)
	assert.NotEmpty(t, plan.ID, "el plan generado se persiste")
	assert.Len(t, plans.byID, 1)
}

func TestSOPGenerate_SinDatos_PlanVacio(t *testing.T) {
	uc, _, _, plans := buildSOPUC()

	plan, err := uc.Generate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plan.ForecastedDemand)
	assert.Empty(t, plan.ProductionCapacity)
	assert.Len(t, plans.byID, 1, "sin datos igual se persiste un plan vacío")
}
