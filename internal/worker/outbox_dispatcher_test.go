//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"
	"restaurant-booking/internal/worker"
	workermock "restaurant-booking/tests/mock/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type markCall struct {
	status  string
	lastErr *string
	retryAt *time.Time
}

type fakeOutbox struct {
	jobs  []shared.OutboxJob
	marks map[uuid.UUID]markCall
	limit int
}

func (f *fakeOutbox) WithinOutbox(ctx context.Context, fn func(ctx context.Context, jobs shared.OutboxRepository) error) error {
	return fn(ctx, f)
}

func (f *fakeOutbox) DueJobs(_ context.Context, now time.Time, limit int) ([]shared.OutboxJob, error) {
	f.limit = limit
	var due []shared.OutboxJob
	for _, j := range f.jobs {
		if _, marked := f.marks[j.ID]; !marked && !j.RunAt.After(now) {
			due = append(due, j)
		}
	}
	return due, nil
}

func (f *fakeOutbox) MarkJob(_ context.Context, jobID uuid.UUID, status string, lastError *string, retryAt *time.Time) error {
	f.marks[jobID] = markCall{status: status, lastErr: lastError, retryAt: retryAt}
	return nil
}

type OutboxDispatcherTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	publisher *workermock.MockEventPublisher
	outbox    *fakeOutbox
	now       time.Time
	sut       *worker.OutboxDispatcher
}

func (s *OutboxDispatcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.publisher = workermock.NewMockEventPublisher(s.ctrl)
	s.outbox = &fakeOutbox{marks: map[uuid.UUID]markCall{}}
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.sut = worker.NewOutboxDispatcher(s.outbox, s.publisher, clock.NewMockClock(s.now), config.OutboxConfig{
		BatchSize:   10,
		MaxAttempts: 3,
	})
}

func (s *OutboxDispatcherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOutboxDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxDispatcherTestSuite))
}

func (s *OutboxDispatcherTestSuite) addJob(topic string, attempts int, runAt time.Time) shared.OutboxJob {
	job := shared.OutboxJob{
		ID:       uuid.New(),
		Kind:     "event",
		Topic:    topic,
		Payload:  []byte(`{"booking_id":"x"}`),
		RunAt:    runAt,
		Attempts: attempts,
	}
	s.outbox.jobs = append(s.outbox.jobs, job)
	return job
}

func (s *OutboxDispatcherTestSuite) TestDispatchOnce_PublishesDueJobs() {
	first := s.addJob("booking.created", 0, s.now.Add(-time.Minute))
	second := s.addJob("booking.tables_assigned", 0, s.now)
	later := s.addJob("booking.created", 0, s.now.Add(time.Minute))

	s.publisher.EXPECT().Publish(gomock.Any(), first.Topic, first.Payload).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), second.Topic, second.Payload).Return(nil)

	sent, err := s.sut.DispatchOnce(context.Background())

	s.Require().NoError(err)
	s.Equal(2, sent)
	s.Equal(10, s.outbox.limit)
	s.Equal(shared.JobStatusSent, s.outbox.marks[first.ID].status)
	s.Equal(shared.JobStatusSent, s.outbox.marks[second.ID].status)
	s.NotContains(s.outbox.marks, later.ID)
}

func (s *OutboxDispatcherTestSuite) TestDispatchOnce_ReschedulesFailedPublish() {
	job := s.addJob("booking.created", 0, s.now)

	s.publisher.EXPECT().Publish(gomock.Any(), job.Topic, job.Payload).Return(errors.New("broker down"))

	sent, err := s.sut.DispatchOnce(context.Background())

	s.Require().NoError(err)
	s.Equal(0, sent)
	mark := s.outbox.marks[job.ID]
	s.Equal(shared.JobStatusQueued, mark.status)
	s.Require().NotNil(mark.lastErr)
	s.Equal("broker down", *mark.lastErr)
	s.Require().NotNil(mark.retryAt)
	s.Equal(s.now.Add(worker.RetryDelay(1)), *mark.retryAt)
}

func (s *OutboxDispatcherTestSuite) TestDispatchOnce_StopsBatchWhenPublisherUnavailable() {
	first := s.addJob("booking.created", 0, s.now.Add(-2*time.Minute))
	second := s.addJob("booking.tables_assigned", 0, s.now.Add(-time.Minute))
	third := s.addJob("booking.created", 0, s.now)

	unavailable := errs.Mark(errs.New("failed to dial broker: connection refused"), shared.ErrPublisherUnavailable)
	s.publisher.EXPECT().Publish(gomock.Any(), first.Topic, first.Payload).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), second.Topic, second.Payload).Return(unavailable).Times(1)

	sent, err := s.sut.DispatchOnce(context.Background())

	s.Require().NoError(err)
	s.Equal(1, sent)
	s.Equal(shared.JobStatusSent, s.outbox.marks[first.ID].status)
	s.Equal(shared.JobStatusQueued, s.outbox.marks[second.ID].status)
	s.NotContains(s.outbox.marks, third.ID)
}

func (s *OutboxDispatcherTestSuite) TestDispatchOnce_ContinuesAfterMessageLevelFailure() {
	first := s.addJob("booking.created", 0, s.now.Add(-time.Minute))
	second := s.addJob("booking.created", 0, s.now)

	s.publisher.EXPECT().Publish(gomock.Any(), first.Topic, first.Payload).Return(errors.New("failed to publish event"))
	s.publisher.EXPECT().Publish(gomock.Any(), second.Topic, second.Payload).Return(nil)

	sent, err := s.sut.DispatchOnce(context.Background())

	s.Require().NoError(err)
	s.Equal(1, sent)
	s.Equal(shared.JobStatusQueued, s.outbox.marks[first.ID].status)
	s.Equal(shared.JobStatusSent, s.outbox.marks[second.ID].status)
}

func (s *OutboxDispatcherTestSuite) TestDispatchOnce_GivesUpAfterMaxAttempts() {
	job := s.addJob("booking.created", 2, s.now)

	s.publisher.EXPECT().Publish(gomock.Any(), job.Topic, job.Payload).Return(errors.New("broker down"))

	_, err := s.sut.DispatchOnce(context.Background())

	s.Require().NoError(err)
	mark := s.outbox.marks[job.ID]
	s.Equal(shared.JobStatusFailed, mark.status)
	s.Nil(mark.retryAt)
}

func TestRetryDelay(t *testing.T) {
	testCases := []struct {
		attempt  int
		expected time.Duration
	}{
		{attempt: 0, expected: 5 * time.Second},
		{attempt: 1, expected: 5 * time.Second},
		{attempt: 2, expected: 10 * time.Second},
		{attempt: 4, expected: 40 * time.Second},
		{attempt: 20, expected: 5 * time.Minute},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, worker.RetryDelay(tc.attempt), "attempt %d", tc.attempt)
	}
	require.True(t, worker.RetryDelay(7) <= 5*time.Minute)
}
