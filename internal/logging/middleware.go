package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware attaches a fresh LogData to every request context and emits one
// structured entry per request with the accumulated timings and data items.
func Middleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		logData.AddData("operation", ctx.Operation().OperationID)

		endTimer := logData.AddTiming("duration")
		next(huma.WithContext(ctx, WithLogData(ctx.Context(), logData)))
		endTimer()

		logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}
