package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-manufactura/internal/application/adapter"
)

func TestParseMode(t *testing.T) {
	m, err := adapter.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, adapter.ModeMock, m, "vacío debe equivaler a mock")

	m, err = adapter.ParseMode(" API ")
	require.NoError(t, err)
	assert.Equal(t, adapter.ModeAPI, m)

	_, err = adapter.ParseMode("graphql")
	assert.Error(t, err)
}
