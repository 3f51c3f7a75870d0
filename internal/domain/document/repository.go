package document

import "context"

// Repository defines the interface for document data operations.
// Receipts and manufacturing orders enforce one document per order;
// saving again replaces the previous row.
type Repository interface {
	Save(ctx context.Context, doc *Document) error
	GetByParent(ctx context.Context, kind Kind, parentID uint) (*Document, error)
	ListByParent(ctx context.Context, kind Kind, parentID uint) ([]*Document, error)
	Delete(ctx context.Context, id uint) error
	DeleteByParent(ctx context.Context, kind Kind, parentID uint) error
}
