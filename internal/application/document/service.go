package document

import (
	"context"
	"encoding/base64"
	"fmt"

	"keybuddy/internal/domain/document"
	"keybuddy/internal/shared/errors"
	"keybuddy/internal/shared/logger"
)

// Cipher encrypts and decrypts the stored PDF payloads.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// Service stores and retrieves encrypted PDF documents. Receipts and
// manufacturing orders are one-per-order and replaced on re-save;
// invoices accumulate per key system.
type Service struct {
	repo   document.Repository
	cipher Cipher
	logger logger.Interface
}

// NewService creates a document service.
func NewService(repo document.Repository, cipher Cipher, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		cipher: cipher,
		logger: logger,
	}
}

// Store encrypts and saves a PDF.
func (s *Service) Store(ctx context.Context, req StoreRequest) (*DocumentResponse, error) {
	kind := document.Kind(req.Kind)
	if !kind.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid document kind: %s", req.Kind))
	}
	if len(req.Content) == 0 {
		return nil, errors.NewValidationError("document content is required")
	}

	// The cipher works on strings, so the binary PDF is base64-coded
	// before encryption. Legacy rows use the same layering.
	encoded := base64.StdEncoding.EncodeToString(req.Content)
	encrypted, err := s.cipher.Encrypt(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt document: %w", err)
	}

	entity, err := document.NewDocument(kind, req.ParentID, encrypted)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, err
	}

	s.logger.Infow("document stored", "kind", kind, "parent_id", req.ParentID)
	return toResponse(entity), nil
}

// Get retrieves and decrypts the current document for a parent. For
// invoices this is the most recent one.
func (s *Service) Get(ctx context.Context, kind document.Kind, parentID uint) (*ContentResponse, error) {
	if !kind.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid document kind: %s", kind))
	}

	entity, err := s.repo.GetByParent(ctx, kind, parentID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("document not found")
	}

	content, err := s.decrypt(entity)
	if err != nil {
		return nil, err
	}

	return &ContentResponse{
		ID:        entity.ID(),
		Kind:      string(entity.Kind()),
		ParentID:  entity.ParentID(),
		Content:   content,
		CreatedAt: entity.CreatedAt(),
	}, nil
}

// List returns the documents attached to a parent, without content.
func (s *Service) List(ctx context.Context, kind document.Kind, parentID uint) ([]*DocumentResponse, error) {
	if !kind.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid document kind: %s", kind))
	}

	items, err := s.repo.ListByParent(ctx, kind, parentID)
	if err != nil {
		return nil, err
	}
	responses := make([]*DocumentResponse, 0, len(items))
	for _, d := range items {
		responses = append(responses, toResponse(d))
	}
	return responses, nil
}

// Delete removes a single invoice by ID.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// DeleteByParent removes every document of a kind for a parent. Used
// when the parent order or key system is deleted.
func (s *Service) DeleteByParent(ctx context.Context, kind document.Kind, parentID uint) error {
	if !kind.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid document kind: %s", kind))
	}
	return s.repo.DeleteByParent(ctx, kind, parentID)
}

func (s *Service) decrypt(entity *document.Document) ([]byte, error) {
	decoded, err := s.cipher.Decrypt(entity.PDFEncrypted())
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt document: %w", err)
	}
	content, err := base64.StdEncoding.DecodeString(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document content: %w", err)
	}
	return content, nil
}

func toResponse(d *document.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:        d.ID(),
		Kind:      string(d.Kind()),
		ParentID:  d.ParentID(),
		CreatedAt: d.CreatedAt(),
	}
}
