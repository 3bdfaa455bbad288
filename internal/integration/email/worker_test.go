package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/zen-finance/backend/internal/domain/entity"
	domainerror "github.com/zen-finance/backend/internal/domain/error"
	"github.com/zen-finance/backend/internal/integration/email/templates"
)

type fakeEmailQueue struct {
	jobs []*entity.EmailJob
}

func (q *fakeEmailQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeEmailQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range q.jobs {
		if job.IsReadyToProcess() {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (q *fakeEmailQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	return nil
}

func (q *fakeEmailQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	for _, job := range q.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return nil, domainerror.ErrEmailJobNotFound
}

func newReportJob() *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateMonthlyReport,
		"maria@example.com",
		"Maria",
		"Seu resumo financeiro de 08/2026",
		map[string]interface{}{
			"name":  "Maria",
			"month": "08/2026",
			"total": "350.00",
			"categories": []interface{}{
				map[string]interface{}{"name": "Alimentação", "amount": "200.00"},
				map[string]interface{}{"name": "Transporte", "amount": "150.00"},
			},
			"alerts": []interface{}{
				"Atenção! Você ultrapassou a meta da categoria Alimentação.",
			},
		},
	)
}

func newTestWorker(t *testing.T, queue *fakeEmailQueue, sender *MockEmailSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("renders and sends a monthly report", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := newReportJob()
		_ = queue.Create(ctx, job)

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 1 {
			t.Fatalf("expected one sent email, got %d", len(sender.SentEmails))
		}

		sent := sender.SentEmails[0]
		if sent.To != "maria@example.com" {
			t.Errorf("unexpected recipient %q", sent.To)
		}
		if !strings.Contains(sent.HTML, "350.00") {
			t.Error("expected HTML body to contain the total")
		}
		if !strings.Contains(sent.HTML, "Alimentação") {
			t.Error("expected HTML body to contain the category name")
		}
		if !strings.Contains(sent.Text, "ultrapassou a meta") {
			t.Error("expected text body to contain the alert")
		}

		if job.Status != entity.EmailStatusSent {
			t.Errorf("expected sent status, got %s", job.Status)
		}
		if job.ResendID == "" {
			t.Error("expected a provider id on the job")
		}
	})

	t.Run("temporary failure schedules a retry", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("rate limited"), false)
		worker := newTestWorker(t, queue, sender)

		job := newReportJob()
		_ = queue.Create(ctx, job)

		worker.ProcessNow(ctx)

		if job.Status != entity.EmailStatusPending {
			t.Errorf("expected pending status for retry, got %s", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
		if !job.ScheduledAt.After(time.Now().UTC().Add(30 * time.Second)) {
			t.Errorf("expected retry to be backed off, scheduled at %s", job.ScheduledAt)
		}
	})

	t.Run("permanent failure fails the job immediately", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("invalid api key"), true)
		worker := newTestWorker(t, queue, sender)

		job := newReportJob()
		_ = queue.Create(ctx, job)

		worker.ProcessNow(ctx)

		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed status, got %s", job.Status)
		}
		if job.LastError == "" {
			t.Error("expected last error to be recorded")
		}
	})

	t.Run("unknown template fails permanently", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob("welcome", "maria@example.com", "Maria", "Olá", nil)
		_ = queue.Create(ctx, job)

		worker.ProcessNow(ctx)

		if len(sender.SentEmails) != 0 {
			t.Errorf("expected no email sent, got %d", len(sender.SentEmails))
		}
		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed status, got %s", job.Status)
		}
	})
}
