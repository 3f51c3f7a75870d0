package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"keybuddy/internal/domain/document"
	"keybuddy/internal/infrastructure/database"
	"keybuddy/internal/infrastructure/persistence/models"
	"keybuddy/internal/shared/logger"
)

// DocumentRepository stores encrypted PDF documents. Each document
// kind lives in its own table; the kind switch below routes to the
// right model.
type DocumentRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB, logger logger.Interface) document.Repository {
	return &DocumentRepository{
		db:     db,
		logger: logger,
	}
}

// Save stores a document. For key receipts and manufacturing orders
// any previous document for the same order is replaced.
func (r *DocumentRepository) Save(ctx context.Context, doc *document.Document) error {
	err := database.WithWriteRetry(ctx, func() error {
		switch doc.Kind() {
		case document.KindKeyReceipt:
			if err := r.db.WithContext(ctx).
				Where("order_id = ?", doc.ParentID()).
				Delete(&models.KeyReceiptModel{}).Error; err != nil {
				return err
			}
			model := &models.KeyReceiptModel{
				OrderID:      doc.ParentID(),
				PDFEncrypted: doc.PDFEncrypted(),
				CreatedAt:    doc.CreatedAt(),
			}
			if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
				return err
			}
			doc.SetID(model.ID)
			return nil

		case document.KindManufacturingOrder:
			if err := r.db.WithContext(ctx).
				Where("order_id = ?", doc.ParentID()).
				Delete(&models.ManufacturingOrderModel{}).Error; err != nil {
				return err
			}
			model := &models.ManufacturingOrderModel{
				OrderID:      doc.ParentID(),
				PDFEncrypted: doc.PDFEncrypted(),
				CreatedAt:    doc.CreatedAt(),
			}
			if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
				return err
			}
			doc.SetID(model.ID)
			return nil

		case document.KindInvoice:
			model := &models.InvoiceModel{
				SystemID:     doc.ParentID(),
				PDFEncrypted: doc.PDFEncrypted(),
				CreatedAt:    doc.CreatedAt(),
			}
			if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
				return err
			}
			doc.SetID(model.ID)
			return nil

		default:
			return fmt.Errorf("unknown document kind: %s", doc.Kind())
		}
	})
	if err != nil {
		r.logger.Errorw("failed to save document", "kind", doc.Kind(), "parent_id", doc.ParentID(), "error", err)
		return fmt.Errorf("failed to save document: %w", err)
	}

	r.logger.Infow("document saved", "kind", doc.Kind(), "parent_id", doc.ParentID())
	return nil
}

// GetByParent retrieves the latest document of a kind for a parent
func (r *DocumentRepository) GetByParent(ctx context.Context, kind document.Kind, parentID uint) (*document.Document, error) {
	switch kind {
	case document.KindKeyReceipt:
		var model models.KeyReceiptModel
		if err := r.db.WithContext(ctx).Where("order_id = ?", parentID).First(&model).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to get key receipt: %w", err)
		}
		return document.ReconstructDocument(model.ID, kind, model.OrderID, model.PDFEncrypted, model.CreatedAt), nil

	case document.KindManufacturingOrder:
		var model models.ManufacturingOrderModel
		if err := r.db.WithContext(ctx).Where("order_id = ?", parentID).First(&model).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to get manufacturing order: %w", err)
		}
		return document.ReconstructDocument(model.ID, kind, model.OrderID, model.PDFEncrypted, model.CreatedAt), nil

	case document.KindInvoice:
		var model models.InvoiceModel
		if err := r.db.WithContext(ctx).
			Where("system_id = ?", parentID).
			Order("id desc").
			First(&model).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to get invoice: %w", err)
		}
		return document.ReconstructDocument(model.ID, kind, model.SystemID, model.PDFEncrypted, model.CreatedAt), nil

	default:
		return nil, fmt.Errorf("unknown document kind: %s", kind)
	}
}

// ListByParent retrieves all documents of a kind for a parent. Only
// invoices can have more than one per parent.
func (r *DocumentRepository) ListByParent(ctx context.Context, kind document.Kind, parentID uint) ([]*document.Document, error) {
	if kind != document.KindInvoice {
		doc, err := r.GetByParent(ctx, kind, parentID)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, nil
		}
		return []*document.Document{doc}, nil
	}

	var invoiceModels []*models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("system_id = ?", parentID).
		Order("id desc").
		Find(&invoiceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	docs := make([]*document.Document, 0, len(invoiceModels))
	for _, model := range invoiceModels {
		docs = append(docs, document.ReconstructDocument(model.ID, kind, model.SystemID, model.PDFEncrypted, model.CreatedAt))
	}
	return docs, nil
}

// Delete removes a document by ID. The caller must know the kind is
// an invoice; receipts and manufacturing orders are removed via
// DeleteByParent.
func (r *DocumentRepository) Delete(ctx context.Context, id uint) error {
	err := database.WithWriteRetry(ctx, func() error {
		return r.db.WithContext(ctx).Delete(&models.InvoiceModel{}, id).Error
	})
	if err != nil {
		r.logger.Errorw("failed to delete document", "id", id, "error", err)
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// DeleteByParent removes all documents of a kind for a parent
func (r *DocumentRepository) DeleteByParent(ctx context.Context, kind document.Kind, parentID uint) error {
	err := database.WithWriteRetry(ctx, func() error {
		switch kind {
		case document.KindKeyReceipt:
			return r.db.WithContext(ctx).Where("order_id = ?", parentID).Delete(&models.KeyReceiptModel{}).Error
		case document.KindManufacturingOrder:
			return r.db.WithContext(ctx).Where("order_id = ?", parentID).Delete(&models.ManufacturingOrderModel{}).Error
		case document.KindInvoice:
			return r.db.WithContext(ctx).Where("system_id = ?", parentID).Delete(&models.InvoiceModel{}).Error
		default:
			return fmt.Errorf("unknown document kind: %s", kind)
		}
	})
	if err != nil {
		r.logger.Errorw("failed to delete documents", "kind", kind, "parent_id", parentID, "error", err)
		return fmt.Errorf("failed to delete documents: %w", err)
	}
	return nil
}
