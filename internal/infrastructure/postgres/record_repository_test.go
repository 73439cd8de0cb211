package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-manufactura/internal/domain"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/postgres"
	"github.com/jhoicas/erp-manufactura/pkg/config"
)

// Integración: requiere TEST_DATABASE_URL apuntando a una base desechable.
func testPool(t *testing.T) *postgres.TxRunner {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `DELETE FROM erp_records WHERE kind IN ('bom', 'machine')`)
	require.NoError(t, err)
	return postgres.NewTxRunner(pool)
}

func TestRecordRepo_CRUDEnTransaccion(t *testing.T) {
	runner := testPool(t)
	ctx := context.Background()

	err := runner.Run(ctx, func(q postgres.Querier) error {
		repo := postgres.NewRecordRepository[entity.BOM](q)
		b := entity.BOM{
			ID:         "bom-t1",
			Code:       "BOM-T1",
			Components: []entity.BOMComponent{{Name: "Base", Quantity: decimal.NewFromInt(2), Cost: decimal.NewFromInt(100)}},
		}
		b.Recalculate()
		if err := repo.Create(ctx, b); err != nil {
			return err
		}
		got, err := repo.GetByID(ctx, "bom-t1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, decimal.NewFromInt(200).Equal(got.TotalCost))

		assert.True(t, errors.Is(repo.Create(ctx, b), domain.ErrDuplicate))
		return nil
	})
	require.Error(t, err, "la violación de unicidad aborta la transacción")
}

func TestRecordRepo_SumAmountNumeric(t *testing.T) {
	runner := testPool(t)
	ctx := context.Background()

	err := runner.Run(ctx, func(q postgres.Querier) error {
		repo := postgres.NewRecordRepository[entity.BOM](q)
		for i, cost := range []string{"100.25", "0.50"} {
			b := entity.BOM{
				ID:         fmt.Sprintf("bom-s%d", i),
				Components: []entity.BOMComponent{{Name: "Base", Quantity: decimal.NewFromInt(1), Cost: decimal.RequireFromString(cost)}},
			}
			b.Recalculate()
			require.NoError(t, repo.Create(ctx, b))
		}
		total, err := repo.SumAmount(ctx, "totalCost")
		require.NoError(t, err)
		assert.Equal(t, "100.75", total.String())

		empty, err := postgres.NewRecordRepository[entity.Machine](q).SumAmount(ctx, "efficiency")
		require.NoError(t, err)
		assert.True(t, empty.IsZero())
		return errors.New("rollback")
	})
	require.Error(t, err)
}

func TestRecordRepo_RollbackAnteError(t *testing.T) {
	runner := testPool(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := runner.Run(ctx, func(q postgres.Querier) error {
		require.NoError(t, postgres.NewRecordRepository[entity.Machine](q).Create(ctx, entity.Machine{ID: "mac-t1"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = runner.Run(ctx, func(q postgres.Querier) error {
		n, err := postgres.NewRecordRepository[entity.Machine](q).Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		return nil
	})
	require.NoError(t, err)
}

func TestRecordRepo_UpdateInexistente(t *testing.T) {
	runner := testPool(t)
	ctx := context.Background()
	err := runner.Run(ctx, func(q postgres.Querier) error {
		return postgres.NewRecordRepository[entity.Machine](q).Update(ctx, entity.Machine{ID: "nope"})
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
