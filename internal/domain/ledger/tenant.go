package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Role is the per-tenant access level of a member. Write implies read.
type Role string

const (
	RoleRead  Role = "read"
	RoleWrite Role = "write"
)

// Tenant is an isolated organizational unit owning its own transactions
// and documents.
type Tenant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

// TableName returns the table name for GORM
func (Tenant) TableName() string {
	return "tenants"
}

// Membership binds a user to a tenant with a role. Unique per
// (user, tenant). Roles are never mutated by this service; the binding
// is created together with the tenant and dropped when either side is
// removed.
type Membership struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"userId"`
	TenantID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"tenantId"`
	Role      Role      `gorm:"type:varchar(10);not null" json:"role"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

// TableName returns the table name for GORM
func (Membership) TableName() string {
	return "tenant_users"
}
