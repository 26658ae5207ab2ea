package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Document is a file reference attached to a transaction. Files are not
// stored by this service; a document only carries an absolute http(s)
// URL. Referential integrity to the parent transaction is enforced by
// the store.
type Document struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transactionId"`
	FileURL       string    `gorm:"type:text;not null;column:file_url" json:"fileUrl"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

// TableName returns the table name for GORM
func (Document) TableName() string {
	return "documents"
}
