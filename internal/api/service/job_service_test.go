package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"golang-monetization-engine/internal/api/dto"
	"golang-monetization-engine/internal/entity"
	"golang-monetization-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeJobRepo struct {
	jobs   map[uint]*entity.GenerationJob
	nextID uint
	err    error
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uint]*entity.GenerationJob), nextID: 1}
}

func (r *fakeJobRepo) Create(ctx context.Context, job *entity.GenerationJob) error {
	if r.err != nil {
		return r.err
	}
	job.ID = r.nextID
	r.nextID++
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(ctx context.Context, id uint) (*entity.GenerationJob, error) {
	if r.err != nil {
		return nil, r.err
	}
	job, ok := r.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return job, nil
}

func (r *fakeJobRepo) FindAll(ctx context.Context) ([]entity.GenerationJob, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.GenerationJob
	for _, job := range r.jobs {
		out = append(out, *job)
	}
	return out, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, job *entity.GenerationJob) error {
	if r.err != nil {
		return r.err
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id uint) error {
	if r.err != nil {
		return r.err
	}
	delete(r.jobs, id)
	return nil
}

func TestJobServiceCreateJob(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo, logger.NewNop())

	resp, err := svc.CreateJob(context.Background(), &dto.CreateJobRequest{
		Name:         "quarterly-review",
		Description:  "Quarterly monetization review",
		BusinessData: json.RawMessage(`{"revenue":1000}`),
		MarketTrends: json.RawMessage(`{"market_growth":0.05}`),
		FeedURLs:     []string{"https://example.com/feed.xml"},
		Notify:       true,
		Timeout:      120,
		Schedules: []dto.ScheduleDTO{
			{CronExpression: "0 9 * * 1", IsActive: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "quarterly-review", resp.Name)
	assert.Equal(t, []string{"https://example.com/feed.xml"}, resp.FeedURLs)
	assert.True(t, resp.Notify)
	assert.Equal(t, 120, resp.Timeout)
	require.Len(t, resp.Schedules, 1)
	assert.Equal(t, "0 9 * * 1", resp.Schedules[0].CronExpression)
	assert.JSONEq(t, `{"revenue":1000}`, string(resp.BusinessData))

	stored, ok := repo.jobs[1]
	require.True(t, ok)
	assert.Equal(t, "quarterly-review", stored.Name)
}

func TestJobServiceUpdateJobReplacesSchedules(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo, logger.NewNop())

	created, err := svc.CreateJob(context.Background(), &dto.CreateJobRequest{
		Name: "job",
		Schedules: []dto.ScheduleDTO{
			{CronExpression: "0 9 * * 1", IsActive: true},
			{CronExpression: "0 18 * * 5", IsActive: true},
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateJob(context.Background(), created.ID, &dto.UpdateJobRequest{
		Name: "job-renamed",
		Schedules: []dto.ScheduleDTO{
			{CronExpression: "30 7 * * *", IsActive: false},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "job-renamed", updated.Name)
	require.Len(t, updated.Schedules, 1)
	assert.Equal(t, "30 7 * * *", updated.Schedules[0].CronExpression)
	assert.False(t, updated.Schedules[0].IsActive)
}

func TestJobServiceUpdateJobNotFound(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), logger.NewNop())

	_, err := svc.UpdateJob(context.Background(), 99, &dto.UpdateJobRequest{Name: "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestJobServiceDeleteJobPropagatesError(t *testing.T) {
	repo := newFakeJobRepo()
	repo.err = errors.New("db down")
	svc := NewJobService(repo, logger.NewNop())

	err := svc.DeleteJob(context.Background(), 1)
	assert.Error(t, err)
}
