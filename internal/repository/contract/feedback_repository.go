package contract

import (
	"context"

	"ironlady-ai-be/internal/entity"
	"ironlady-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
