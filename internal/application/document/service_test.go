package document

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"keybuddy/internal/domain/document"
	"keybuddy/internal/shared/logger"
)

type fakeCipher struct{}

func (fakeCipher) Encrypt(plaintext string) (string, error) {
	return "enc:" + plaintext, nil
}

func (fakeCipher) Decrypt(ciphertext string) (string, error) {
	if !strings.HasPrefix(ciphertext, "enc:") {
		return "", errors.New("invalid token")
	}
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}

type fakeDocumentRepo struct {
	docs   map[uint]*document.Document
	nextID uint
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[uint]*document.Document), nextID: 1}
}

func (r *fakeDocumentRepo) Save(ctx context.Context, doc *document.Document) error {
	// Receipts and manufacturing orders are one per order: replace.
	if doc.Kind() != document.KindInvoice {
		for id, existing := range r.docs {
			if existing.Kind() == doc.Kind() && existing.ParentID() == doc.ParentID() {
				delete(r.docs, id)
			}
		}
	}
	doc.SetID(r.nextID)
	r.nextID++
	r.docs[doc.ID()] = doc
	return nil
}

func (r *fakeDocumentRepo) GetByParent(ctx context.Context, kind document.Kind, parentID uint) (*document.Document, error) {
	var latest *document.Document
	for _, d := range r.docs {
		if d.Kind() == kind && d.ParentID() == parentID {
			if latest == nil || d.ID() > latest.ID() {
				latest = d
			}
		}
	}
	return latest, nil
}

func (r *fakeDocumentRepo) ListByParent(ctx context.Context, kind document.Kind, parentID uint) ([]*document.Document, error) {
	var out []*document.Document
	for _, d := range r.docs {
		if d.Kind() == kind && d.ParentID() == parentID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, id uint) error {
	delete(r.docs, id)
	return nil
}

func (r *fakeDocumentRepo) DeleteByParent(ctx context.Context, kind document.Kind, parentID uint) error {
	for id, d := range r.docs {
		if d.Kind() == kind && d.ParentID() == parentID {
			delete(r.docs, id)
		}
	}
	return nil
}

func newTestService(repo document.Repository) *Service {
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewService(repo, fakeCipher{}, log)
}

func TestService_StoreAndGetRoundTrip(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	pdf := []byte("%PDF-1.4\nnyckelkvittens\n%%EOF")
	resp, err := svc.Store(ctx, StoreRequest{
		Kind:     string(document.KindKeyReceipt),
		ParentID: 7,
		Content:  pdf,
	})
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if resp.ID == 0 {
		t.Error("expected document to get an ID")
	}

	got, err := svc.Get(ctx, document.KindKeyReceipt, 7)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got.Content) != string(pdf) {
		t.Errorf("content round trip mismatch: got %q", got.Content)
	}
}

func TestService_StoreValidation(t *testing.T) {
	svc := newTestService(newFakeDocumentRepo())
	ctx := context.Background()

	if _, err := svc.Store(ctx, StoreRequest{Kind: "passport", ParentID: 1, Content: []byte("x")}); err == nil {
		t.Error("expected error for unknown document kind")
	}
	if _, err := svc.Store(ctx, StoreRequest{Kind: string(document.KindInvoice), ParentID: 1}); err == nil {
		t.Error("expected error for empty content")
	}
}

func TestService_StoredContentIsEncrypted(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	pdf := []byte("%PDF-1.4 hemligt innehåll")
	if _, err := svc.Store(ctx, StoreRequest{
		Kind:     string(document.KindManufacturingOrder),
		ParentID: 3,
		Content:  pdf,
	}); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	stored, _ := repo.GetByParent(ctx, document.KindManufacturingOrder, 3)
	if stored == nil {
		t.Fatal("document not persisted")
	}
	if strings.Contains(stored.PDFEncrypted(), "hemligt") {
		t.Error("stored payload contains plaintext")
	}
	if !strings.HasPrefix(stored.PDFEncrypted(), "enc:") {
		t.Error("stored payload did not pass through the cipher")
	}
}

func TestService_GetMissingDocument(t *testing.T) {
	svc := newTestService(newFakeDocumentRepo())

	if _, err := svc.Get(context.Background(), document.KindInvoice, 99); err == nil {
		t.Error("expected not found error")
	}
}

func TestService_InvoicesAccumulateAndGetReturnsLatest(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	for _, body := range []string{"faktura 1", "faktura 2", "faktura 3"} {
		if _, err := svc.Store(ctx, StoreRequest{
			Kind:     string(document.KindInvoice),
			ParentID: 5,
			Content:  []byte(body),
		}); err != nil {
			t.Fatalf("Store() error = %v", err)
		}
	}

	list, err := svc.List(ctx, document.KindInvoice, 5)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 invoices, got %d", len(list))
	}

	got, err := svc.Get(ctx, document.KindInvoice, 5)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got.Content) != "faktura 3" {
		t.Errorf("expected latest invoice, got %q", got.Content)
	}
}

func TestService_ReceiptsReplaceOnResave(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	for _, body := range []string{"first", "second"} {
		if _, err := svc.Store(ctx, StoreRequest{
			Kind:     string(document.KindKeyReceipt),
			ParentID: 2,
			Content:  []byte(body),
		}); err != nil {
			t.Fatalf("Store() error = %v", err)
		}
	}

	list, err := svc.List(ctx, document.KindKeyReceipt, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected single receipt after re-save, got %d", len(list))
	}

	got, _ := svc.Get(ctx, document.KindKeyReceipt, 2)
	if string(got.Content) != "second" {
		t.Errorf("expected replaced content, got %q", got.Content)
	}
}

func TestService_DeleteByParent(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.Store(ctx, StoreRequest{
			Kind:     string(document.KindInvoice),
			ParentID: 4,
			Content:  []byte("faktura"),
		}); err != nil {
			t.Fatalf("Store() error = %v", err)
		}
	}

	if err := svc.DeleteByParent(ctx, document.KindInvoice, 4); err != nil {
		t.Fatalf("DeleteByParent() error = %v", err)
	}
	list, _ := svc.List(ctx, document.KindInvoice, 4)
	if len(list) != 0 {
		t.Errorf("expected no invoices after delete, got %d", len(list))
	}
}
