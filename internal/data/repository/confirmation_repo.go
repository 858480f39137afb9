package repository

import (
	"context"
	"fmt"

	"booking-widget/internal/data/entity"
	"booking-widget/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ConfirmationRepository interface {
	Create(ctx context.Context, confirmation *entity.BookingConfirmation) error
}

type confirmationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewConfirmationRepository(db database.PgxIface, log *zap.Logger) ConfirmationRepository {
	return &confirmationRepository{
		db:  db,
		log: log.With(zap.String("repository", "confirmation")),
	}
}

func (r *confirmationRepository) Create(ctx context.Context, confirmation *entity.BookingConfirmation) error {
	if confirmation.ID == uuid.Nil {
		confirmation.ID = uuid.New()
	}

	query := `
		INSERT INTO booking_confirmations (id, booking_date, booking_time, service, confirmed_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		confirmation.ID,
		confirmation.BookingDate,
		confirmation.BookingTime,
		confirmation.Service,
		confirmation.ConfirmedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking confirmation",
			zap.Error(err),
			zap.String("confirmation_id", confirmation.ID.String()),
		)
		return fmt.Errorf("insert booking confirmation %s: %w", confirmation.ID, err)
	}

	return nil
}
