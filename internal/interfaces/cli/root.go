// Package cli comandos de erpctl: consulta y edición de las entidades del ERP a través del
// store, con el mismo adaptador (mock o api) que usaría cualquier otro cliente.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/erp-manufactura/internal/application/adapter"
	"github.com/jhoicas/erp-manufactura/internal/application/store"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/adapters"
	"github.com/jhoicas/erp-manufactura/pkg/config"
	"github.com/jhoicas/erp-manufactura/pkg/logger"
)

// AdapterFactory construye el adaptador de datos a partir de la configuración.
type AdapterFactory func(cfg config.AdapterConfig, log *logger.Logger) (adapter.DataAdapter, error)

// Options dependencias inyectables del CLI.
type Options struct {
	Out        io.Writer
	Err        io.Writer
	NewAdapter AdapterFactory
	LoadConfig func() (*config.Config, error)
}

type app struct {
	opts   Options
	log    *logger.Logger
	store  *store.Store
	format string
}

// Root comando raíz de erpctl. ExecuteContext espera las sincronizaciones pendientes
// del store antes de volver, también cuando el subcomando termina con error.
type Root struct {
	*cobra.Command
	app *app
}

// ExecuteContext ejecuta el comando y cierra el store en todos los caminos.
func (r *Root) ExecuteContext(ctx context.Context) error {
	defer r.app.close()
	return r.Command.ExecuteContext(ctx)
}

// NewRootCmd arma erpctl con sus subcomandos.
func NewRootCmd(opts Options) *Root {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.NewAdapter == nil {
		opts.NewAdapter = adapters.New
	}
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.Load
	}

	a := &app{opts: opts}
	var (
		mode     string
		baseURL  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "erpctl",
		Short:         "Consulta y edita las entidades del ERP de manufactura",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context(), mode, baseURL, logLevel)
		},
	}
	cmd.SetOut(opts.Out)
	cmd.SetErr(opts.Err)

	cmd.PersistentFlags().StringVar(&mode, "adapter", "", "Fuente de datos (mock, api); por defecto DATA_ADAPTER")
	cmd.PersistentFlags().StringVar(&baseURL, "api-url", "", "Raíz de la API REST; por defecto API_BASE_URL")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Nivel de log (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&a.format, "output", "o", formatJSON, "Formato de salida (json, yaml)")

	cmd.AddCommand(
		a.entitiesCmd(),
		a.listCmd(),
		a.getCmd(),
		a.addCmd(),
		a.updateCmd(),
		a.deleteCmd(),
		a.stockCmd(),
		a.replenishCmd(),
	)
	return &Root{Command: cmd, app: a}
}

// Execute punto de entrada de cmd/erpctl.
func Execute(ctx context.Context) error {
	return NewRootCmd(Options{}).ExecuteContext(ctx)
}

func (a *app) open(ctx context.Context, mode, baseURL, logLevel string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := a.opts.LoadConfig()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if mode != "" {
		cfg.Adapter.Mode = mode
	}
	if baseURL != "" {
		cfg.Adapter.BaseURL = baseURL
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if a.format != formatJSON && a.format != formatYAML {
		return fmt.Errorf("formato de salida desconocido %q", a.format)
	}

	a.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Output: a.opts.Err})
	da, err := a.opts.NewAdapter(cfg.Adapter, a.log.Named("adapter"))
	if err != nil {
		return err
	}
	a.store = store.New(da, store.WithLogger(a.log.Named("store")))
	// Una carga parcial no impide operar con lo que sí llegó.
	if err := a.store.Load(ctx); err != nil {
		a.log.Warn().Err(err).Msg("carga inicial incompleta")
	}
	return nil
}

// close espera las sincronizaciones pendientes antes de salir.
func (a *app) close() {
	if a.store == nil {
		return
	}
	a.store.Wait()
	a.store.Close()
	a.store = nil
}

func (a *app) lookup(name string) (store.DynamicSet, error) {
	set, ok := a.store.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("entidad desconocida %q (ver erpctl entities)", name)
	}
	return set, nil
}
