package adapters_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-manufactura/internal/application/adapter"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/adapters"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/api"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/mock"
	"github.com/jhoicas/erp-manufactura/pkg/config"
	"github.com/jhoicas/erp-manufactura/pkg/logger"
)

func TestNew_PorDefectoMock(t *testing.T) {
	a, err := adapters.New(config.AdapterConfig{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, adapter.ModeMock, a.Mode())
	assert.IsType(t, &mock.Adapter{}, a)
}

func TestNew_ModoAPI(t *testing.T) {
	a, err := adapters.New(config.AdapterConfig{
		Mode:    "api",
		BaseURL: "http://erp.local/api",
		Timeout: 3 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	require.IsType(t, &api.Adapter{}, a)
	assert.Equal(t, adapter.ModeAPI, a.Mode())
	assert.Equal(t, 3*time.Second, a.(*api.Adapter).Client().Timeout())
}

func TestNew_ModoDesconocido(t *testing.T) {
	_, err := adapters.New(config.AdapterConfig{Mode: "graphql"}, logger.Nop())
	assert.Error(t, err)
}
