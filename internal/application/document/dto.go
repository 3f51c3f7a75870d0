package document

import "time"

// StoreRequest carries a PDF to attach to an order or key system.
// Content is the raw PDF bytes, base64-encoded in transit.
type StoreRequest struct {
	Kind     string `json:"kind" binding:"required"`
	ParentID uint   `json:"parent_id" binding:"required"`
	Content  []byte `json:"content" binding:"required"`
}

// DocumentResponse describes a stored document without its content.
type DocumentResponse struct {
	ID        uint      `json:"id"`
	Kind      string    `json:"kind"`
	ParentID  uint      `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ContentResponse carries a decrypted PDF back to the caller.
type ContentResponse struct {
	ID        uint      `json:"id"`
	Kind      string    `json:"kind"`
	ParentID  uint      `json:"parent_id"`
	Content   []byte    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
