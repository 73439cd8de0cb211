package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/erp-manufactura/internal/application/listview"
)

func (a *app) entitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "Lista las entidades disponibles con su cantidad de registros",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.store.Names() {
				set, _ := a.store.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %d\n", name, set.Len())
			}
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var q listview.Query
	cmd := &cobra.Command{
		Use:   "list <entidad>",
		Short: "Lista registros con búsqueda y filtro por estado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			raw, err := set.ListJSON(q)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "Texto a buscar (sin distinguir mayúsculas)")
	cmd.Flags().StringVarP(&q.Facet, "facet", "f", listview.All, "Valor de estado/tipo/categoría, o all")
	return cmd
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <entidad> <id>",
		Short: "Muestra un registro",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			raw, ok, err := set.GetJSON(args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s %s no encontrado", set.Kind().Name, args[1])
			}
			return a.print(cmd.OutOrStdout(), raw)
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <entidad> <json|->",
		Short: "Crea un registro; el id se asigna localmente",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			body, err := readBody(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			raw, err := set.AddJSON(body)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), raw)
		},
	}
}

func (a *app) updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <entidad> <id> <json|->",
		Short: "Fusiona los campos dados sobre el registro",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			body, err := readBody(cmd.InOrStdin(), args[2])
			if err != nil {
				return err
			}
			raw, ok, err := set.UpdateJSON(args[1], body)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s %s no encontrado", set.Kind().Name, args[1])
			}
			return a.print(cmd.OutOrStdout(), raw)
		},
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entidad> <id>",
		Short: "Elimina un registro",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			removed := set.Delete(args[1])
			fmt.Fprintln(cmd.OutOrStdout(), "eliminado: "+strconv.FormatBool(removed))
			return nil
		},
	}
}

// readBody acepta el JSON literal o "-" para leerlo de stdin.
func readBody(in io.Reader, arg string) ([]byte, error) {
	if arg != "-" {
		return []byte(arg), nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("leer stdin: %w", err)
	}
	return []byte(strings.TrimSpace(string(b))), nil
}
