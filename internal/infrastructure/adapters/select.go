// Package adapters elige la implementación de DataAdapter según la configuración.
package adapters

import (
	"fmt"

	"github.com/jhoicas/erp-manufactura/internal/application/adapter"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/api"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/mock"
	"github.com/jhoicas/erp-manufactura/pkg/config"
	"github.com/jhoicas/erp-manufactura/pkg/logger"
)

// New construye el adaptador indicado por cfg.Mode. Modo vacío = mock.
// Se llama una vez al arrancar; el resultado vive todo el proceso.
func New(cfg config.AdapterConfig, log *logger.Logger) (adapter.DataAdapter, error) {
	mode, err := adapter.ParseMode(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("adapters: %w", err)
	}

	var a adapter.DataAdapter
	switch mode {
	case adapter.ModeAPI:
		a = api.NewAdapter(api.NewClient(cfg.BaseURL, api.WithTimeout(cfg.Timeout)))
		log.Info().Str("mode", string(mode)).Str("base_url", cfg.BaseURL).Dur("timeout", cfg.Timeout).Msg("data adapter seleccionado")
	default:
		a = mock.New(mock.WithDelay(cfg.MockDelay))
		log.Info().Str("mode", string(mode)).Dur("delay", cfg.MockDelay).Msg("data adapter seleccionado")
	}
	return a, nil
}
