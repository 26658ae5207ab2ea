package ledger

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout is the wire format of transaction dates
const DateLayout = "2006-01-02"

// Date is a calendar day in YYYY-MM-DD form. The store column is DATE
// and the driver reads it back as time.Time; Scan normalizes either
// representation so the JSON output always carries the plain day, never
// a timestamp.
type Date string

// Scan implements sql.Scanner
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(DateLayout))
	case string:
		*d = Date(v)
	case []byte:
		*d = Date(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}

// String returns the date in wire form
func (d Date) String() string {
	return string(d)
}
