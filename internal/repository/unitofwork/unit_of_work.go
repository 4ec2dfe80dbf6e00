package unitofwork

import (
	"context"

	"ironlady-ai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FeedbackRepository() contract.FeedbackRepository
	DocumentChunkRepository() contract.DocumentChunkRepository
}
