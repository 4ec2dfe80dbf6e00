package service

import (
	"context"
	"encoding/json"
	"testing"

	"ironlady-ai-be/internal/dto"
	"ironlady-ai-be/internal/entity"
	"ironlady-ai-be/internal/repository/contract"
	"ironlady-ai-be/internal/repository/specification"
	"ironlady-ai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedbackRepo struct {
	created []*entity.Feedback
	total   int64
	byRate  map[string]int64
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, feedback *entity.Feedback) error {
	r.created = append(r.created, feedback)
	return nil
}

func (r *fakeFeedbackRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeFeedbackRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error) {
	return nil, nil
}

func (r *fakeFeedbackRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	return r.created, nil
}

func (r *fakeFeedbackRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	for _, spec := range specs {
		if byRating, ok := spec.(specification.ByRating); ok {
			return r.byRate[byRating.Rating], nil
		}
	}
	return r.total, nil
}

type fakeUow struct {
	feedback contract.FeedbackRepository
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }
func (u *fakeUow) FeedbackRepository() contract.FeedbackRepository {
	return u.feedback
}
func (u *fakeUow) DocumentChunkRepository() contract.DocumentChunkRepository { return nil }

type fakeUowFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakePublisher struct {
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func newFeedbackFixture(repo *fakeFeedbackRepo) (IFeedbackService, *fakePublisher) {
	publisher := &fakePublisher{}
	svc := NewFeedbackService(&fakeUowFactory{uow: &fakeUow{feedback: repo}}, publisher, nopLogger{})
	return svc, publisher
}

func TestFeedbackSubmitStoresAndPublishes(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc, publisher := newFeedbackFixture(repo)

	res, err := svc.Submit(context.Background(), &dto.SubmitFeedbackRequest{
		SessionId:   "sess-1",
		MessageId:   "msg-1",
		Question:    "What is 4T?",
		Answer:      "Target, Timeline, Tasks, Tracking.",
		Rating:      entity.RatingPositive,
		UserComment: "clear answer",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Id)

	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.Equal(t, "sess-1", stored.SessionId)
	require.NotNil(t, stored.UserComment)
	assert.Equal(t, "clear answer", *stored.UserComment)

	require.Len(t, publisher.payloads, 1)
	var event dto.FeedbackSubmittedEvent
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &event))
	assert.Equal(t, stored.Id, event.FeedbackId)
	assert.Equal(t, entity.RatingPositive, event.Rating)
}

func TestFeedbackSubmitOmitsEmptyComment(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc, _ := newFeedbackFixture(repo)

	_, err := svc.Submit(context.Background(), &dto.SubmitFeedbackRequest{
		SessionId: "sess-1",
		Question:  "q",
		Answer:    "a",
		Rating:    entity.RatingNegative,
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Nil(t, repo.created[0].UserComment)
}

func TestFeedbackStatsRounding(t *testing.T) {
	repo := &fakeFeedbackRepo{
		total:  3,
		byRate: map[string]int64{entity.RatingPositive: 2},
	}
	svc, _ := newFeedbackFixture(repo)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Positive)
	assert.Equal(t, int64(1), stats.Negative)
	assert.Equal(t, 66.67, stats.PositivePercentage)
}

func TestFeedbackStatsEmpty(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc, _ := newFeedbackFixture(repo)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
	assert.Equal(t, 0.0, stats.PositivePercentage)
}
