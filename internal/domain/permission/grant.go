package permission

import (
	"fmt"
	"time"
)

// Grant is an individually granted permission on top of a user's role
// defaults. Revoking a grant deletes the row; it cannot mask a
// role-default permission.
type Grant struct {
	id         uint
	userID     uint
	permission Permission
	grantedBy  uint
	grantedAt  time.Time
}

func NewGrant(userID uint, perm Permission, grantedBy uint) (*Grant, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if _, err := Parse(perm.String()); err != nil {
		return nil, err
	}
	return &Grant{
		userID:     userID,
		permission: perm,
		grantedBy:  grantedBy,
		grantedAt:  time.Now(),
	}, nil
}

func ReconstructGrant(id, userID uint, perm Permission, grantedBy uint, grantedAt time.Time) *Grant {
	return &Grant{
		id:         id,
		userID:     userID,
		permission: perm,
		grantedBy:  grantedBy,
		grantedAt:  grantedAt,
	}
}

func (g *Grant) ID() uint               { return g.id }
func (g *Grant) UserID() uint           { return g.userID }
func (g *Grant) Permission() Permission { return g.permission }
func (g *Grant) GrantedBy() uint        { return g.grantedBy }
func (g *Grant) GrantedAt() time.Time   { return g.grantedAt }

func (g *Grant) SetID(id uint) {
	g.id = id
}
