package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/erp-manufactura/internal/application/dto"
	"github.com/jhoicas/erp-manufactura/internal/domain"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/domain/repository"
)

// OrderPDFGenerator puerto del generador de PDF de órdenes.
type OrderPDFGenerator interface {
	Generate(ctx context.Context, doc dto.OrderDocument) ([]byte, error)
}

// OrderPDFUseCase genera la versión imprimible de órdenes de compra y venta.
type OrderPDFUseCase struct {
	purchases repository.RecordRepository[entity.PurchaseOrder]
	sales     repository.RecordRepository[entity.SalesOrder]
	generator OrderPDFGenerator
}

// NewOrderPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewOrderPDFUseCase(
	purchases repository.RecordRepository[entity.PurchaseOrder],
	sales repository.RecordRepository[entity.SalesOrder],
	generator OrderPDFGenerator,
) *OrderPDFUseCase {
	return &OrderPDFUseCase{purchases: purchases, sales: sales, generator: generator}
}

// PurchaseOrderPDF devuelve (pdfBytes, filename). domain.ErrNotFound si la orden no existe.
func (uc *OrderPDFUseCase) PurchaseOrderPDF(ctx context.Context, id string) ([]byte, string, error) {
	po, err := uc.purchases.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden de compra: %w", err)
	}
	if po == nil {
		return nil, "", domain.ErrNotFound
	}
	return uc.render(ctx, dto.FromPurchaseOrder(*po), po.OrderNumber, po.ID)
}

// SalesOrderPDF devuelve (pdfBytes, filename). domain.ErrNotFound si la orden no existe.
func (uc *OrderPDFUseCase) SalesOrderPDF(ctx context.Context, id string) ([]byte, string, error) {
	so, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden de venta: %w", err)
	}
	if so == nil {
		return nil, "", domain.ErrNotFound
	}
	return uc.render(ctx, dto.FromSalesOrder(*so), so.OrderNumber, so.ID)
}

func (uc *OrderPDFUseCase) render(ctx context.Context, doc dto.OrderDocument, number, id string) ([]byte, string, error) {
	out, err := uc.generator.Generate(ctx, doc)
	if err != nil {
		return nil, "", err
	}
	name := number
	if name == "" {
		name = id
	}
	return out, name + ".pdf", nil
}
