package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go-payroll/internal/events"
	"go-payroll/internal/salaryrecord"
	salaryrecorderrors "go-payroll/internal/salaryrecord/errors"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle seeds a zero-amount salary record for each new
// hire so payroll resolution never hits a missing-history gap. HR is expected
// to follow up with the real figure.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	salaryService salaryrecord.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = salaryService.Create(ctx, salaryrecord.CreateSalaryRecordRequest{
			EmployeeID:    event.EmployeeID,
			BaseSalary:    "0",
			EffectiveDate: event.HireDate,
			Notes:         "initial record seeded on hire",
		})
		if err != nil {
			if isUniqueSalaryViolation(err) {
				log.Warn("salary record already exists for event, skipping",
					zap.String("employee_id", event.EmployeeID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("create initial salary record failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("salary record seeded from employee_created event",
			zap.String("employee_id", event.EmployeeID),
		)
	}
}

func isUniqueSalaryViolation(err error) bool {
	if errors.Is(err, salaryrecorderrors.ErrDuplicateEffectiveDate) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_record_effective"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_record_effective")
}
