package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	appinventory "github.com/jhoicas/erp-manufactura/internal/application/inventory"
	"github.com/jhoicas/erp-manufactura/internal/application/listview"
	"github.com/jhoicas/erp-manufactura/internal/domain/inventory"
)

var badgeStyles = map[inventory.StockStatus]lipgloss.Style{
	inventory.OutOfStock: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	inventory.LowStock:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	inventory.Available:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

func (a *app) stockCmd() *cobra.Command {
	var (
		q       listview.Query
		onlyLow bool
	)
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Disponibilidad de productos y cantidad sugerida a pedir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("CÓDIGO", "PRODUCTO", "STOCK", "REORDEN", "ESTADO", "SUGERIDO")
			for _, p := range a.store.Products().Query(q) {
				status := inventory.ClassifyStock(p.Stock, p.ReorderPoint)
				if onlyLow && status == inventory.Available {
					continue
				}
				t.Row(
					p.Code,
					p.Name,
					strconv.Itoa(p.Stock),
					strconv.Itoa(p.ReorderPoint),
					badgeStyles[status].Render(string(status)),
					strconv.Itoa(inventory.SuggestedOrderQty(p.Stock, p.ReorderPoint)),
				)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "Texto a buscar")
	cmd.Flags().BoolVar(&onlyLow, "low", false, "Solo productos agotados o bajo el punto de reorden")
	return cmd
}

func (a *app) replenishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replenish",
		Short: "Lista de reposición priorizada por margen y déficit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := json.Marshal(appinventory.Replenishment(a.store.Products().All()))
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), raw)
		},
	}
}
