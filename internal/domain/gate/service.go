package gate

import (
	"context"

	"github.com/kerjahub/attendance-backend-go/internal/domain/attendance"
)

// Service validates face identity and geofence position, then delegates to
// the attendance state machine. The checks short-circuit in a fixed order:
// embedding shape, enrollment, face distance, gps presence, site config,
// radius. A mismatched face never reaches the location checks and a bad
// location never mutates attendance state.
type Service interface {
	FaceCheckIn(ctx context.Context, userID string, req CheckRequest) (attendance.CheckResult, error)
	FaceCheckOut(ctx context.Context, userID string, req CheckRequest) (attendance.CheckResult, error)
}
