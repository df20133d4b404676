package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Appointment is one booked hour slot on a provider's calendar. Date is
// always truncated to the top of the hour; the store enforces uniqueness
// of (provider_id, date).
type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID         uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	ProviderID string    `bun:"provider_id,notnull" json:"provider_id"`
	UserID     string    `bun:"user_id,notnull" json:"user_id"`
	Date       time.Time `bun:"date,notnull" json:"date"`
	CreatedAt  time.Time `bun:"created_at,notnull" json:"created_at"`
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); !ok {
		return nil
	}
	if a.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		a.ID = id
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return nil
}
