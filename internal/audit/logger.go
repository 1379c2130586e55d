package audit

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/schedulingco/scheduler-api/internal/models"
)

// Sink receives finished audit entries. The in-memory store implements it.
type Sink interface {
	AppendAuditLog(entry models.AuditLog)
}

type Logger struct {
	sink Sink
	log  *zap.Logger
}

func New(sink Sink, log *zap.Logger) *Logger {
	return &Logger{sink: sink, log: log}
}

func (l *Logger) Log(
	businessID string,
	userID *string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	l.sink.AppendAuditLog(models.AuditLog{
		BusinessID: businessID,
		UserID:     userID,
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		Metadata:   metaJSON,
	})

	l.log.Debug("audit event",
		zap.String("business_id", businessID),
		zap.String("action", action),
		zap.String("entity", entity),
	)

	return nil
}
