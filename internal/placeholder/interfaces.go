package placeholder

import (
	"context"

	"github.com/Adda-Baaj/placeholder-client/internal/domain"
	"github.com/Adda-Baaj/placeholder-client/pkg/publishers"
)

// ExportRecorder journals comment files written by SaveLastPostComments.
type ExportRecorder interface {
	RecordExport(rec domain.ExportRecord) error
}

// EventPublisher publishes export notifications downstream.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}
