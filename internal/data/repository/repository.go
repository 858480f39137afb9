package repository

import (
	"booking-widget/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Confirmation ConfirmationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Confirmation: NewConfirmationRepository(db, log),
	}
}
