package form

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-manufactura/internal/domain"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
)

// LineDialog diálogo con líneas (ítems, ingredientes, componentes). Cada cambio de líneas
// recalcula el total del borrador.
type LineDialog[T entity.Entity[T], L entity.Line] struct {
	*Dialog[T]
	lines func(*T) *[]L
	total func(T) decimal.Decimal
}

func newLineDialog[T entity.Entity[T], L entity.Line](
	d *Dialog[T],
	lines func(*T) *[]L,
	total func(T) decimal.Decimal,
	recalc func(*T),
) *LineDialog[T, L] {
	d.after = recalc
	recalc(&d.draft)
	return &LineDialog[T, L]{Dialog: d, lines: lines, total: total}
}

// Lines copia de las líneas actuales.
func (d *LineDialog[T, L]) Lines() []L {
	src := *d.lines(&d.draft)
	out := make([]L, len(src))
	copy(out, src)
	return out
}

// Total agregado del borrador (siempre igual a la suma de las líneas).
func (d *LineDialog[T, L]) Total() decimal.Decimal { return d.total(d.draft) }

// AddLine agrega una línea al final.
func (d *LineDialog[T, L]) AddLine(line L) {
	d.Set(func(t *T) {
		p := d.lines(t)
		*p = append(append([]L(nil), *p...), line)
	})
}

// RemoveLine quita la línea i.
func (d *LineDialog[T, L]) RemoveLine(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.Set(func(t *T) {
		p := d.lines(t)
		kept := make([]L, 0, len(*p)-1)
		kept = append(kept, (*p)[:i]...)
		kept = append(kept, (*p)[i+1:]...)
		*p = kept
	})
	return nil
}

// UpdateLine modifica la línea i.
func (d *LineDialog[T, L]) UpdateLine(i int, fn func(*L)) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.Set(func(t *T) {
		p := d.lines(t)
		next := append([]L(nil), *p...)
		fn(&next[i])
		*p = next
	})
	return nil
}

func (d *LineDialog[T, L]) checkIndex(i int) error {
	if n := len(*d.lines(&d.draft)); i < 0 || i >= n {
		return fmt.Errorf("%w: línea %d fuera de rango (hay %d)", domain.ErrInvalidInput, i, n)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Diálogos con líneas por entidad
// ──────────────────────────────────────────────────────────────────────────────

// PurchaseOrderDialog orden de compra con ítems.
type PurchaseOrderDialog = LineDialog[entity.PurchaseOrder, entity.OrderItem]

// SalesOrderDialog orden de venta con ítems.
type SalesOrderDialog = LineDialog[entity.SalesOrder, entity.OrderItem]

// FormulationDialog formulación con ingredientes.
type FormulationDialog = LineDialog[entity.Formulation, entity.Ingredient]

// BOMDialog lista de materiales con componentes.
type BOMDialog = LineDialog[entity.BOM, entity.BOMComponent]

func purchaseOrderDialog(d *Dialog[entity.PurchaseOrder]) *PurchaseOrderDialog {
	return newLineDialog(d,
		func(o *entity.PurchaseOrder) *[]entity.OrderItem { return &o.Items },
		func(o entity.PurchaseOrder) decimal.Decimal { return o.TotalAmount },
		(*entity.PurchaseOrder).Recalculate,
	)
}

func salesOrderDialog(d *Dialog[entity.SalesOrder]) *SalesOrderDialog {
	return newLineDialog(d,
		func(o *entity.SalesOrder) *[]entity.OrderItem { return &o.Items },
		func(o entity.SalesOrder) decimal.Decimal { return o.TotalAmount },
		(*entity.SalesOrder).Recalculate,
	)
}

func formulationDialog(d *Dialog[entity.Formulation]) *FormulationDialog {
	return newLineDialog(d,
		func(f *entity.Formulation) *[]entity.Ingredient { return &f.Ingredients },
		func(f entity.Formulation) decimal.Decimal { return f.Cost },
		(*entity.Formulation).Recalculate,
	)
}

func bomDialog(d *Dialog[entity.BOM]) *BOMDialog {
	return newLineDialog(d,
		func(b *entity.BOM) *[]entity.BOMComponent { return &b.Components },
		func(b entity.BOM) decimal.Decimal { return b.TotalCost },
		(*entity.BOM).Recalculate,
	)
}

// EditPurchaseOrder diálogo de edición; el total se recalcula desde las líneas al abrir.
func EditPurchaseOrder(o entity.PurchaseOrder) *PurchaseOrderDialog {
	return purchaseOrderDialog(Edit(o))
}

// EditSalesOrder diálogo de edición de orden de venta.
func EditSalesOrder(o entity.SalesOrder) *SalesOrderDialog {
	return salesOrderDialog(Edit(o))
}

// EditFormulation diálogo de edición de formulación.
func EditFormulation(f entity.Formulation) *FormulationDialog {
	return formulationDialog(Edit(f))
}

// EditBOM diálogo de edición de lista de materiales.
func EditBOM(b entity.BOM) *BOMDialog {
	return bomDialog(Edit(b))
}
