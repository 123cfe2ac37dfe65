package board

import (
	"go.uber.org/zap"

	apierrors "github.com/diogo/msgboard/internal/errors"
)

// LogFailure records a flow failure with whatever detail the error carries
func LogFailure(logger *zap.Logger, flow Flow, err error) {
	if logger == nil || err == nil {
		return
	}

	fields := []zap.Field{
		zap.String("flow", flow.String()),
		zap.Error(err),
	}
	if status := apierrors.GetHTTPStatus(err); status > 0 {
		fields = append(fields, zap.Int("status", status))
	}
	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		fields = append(fields, zap.String("endpoint", endpoint))
	}
	if body := apierrors.GetResponseBody(err); body != "" {
		fields = append(fields, zap.String("response_body", body))
	}
	fields = append(fields,
		zap.Bool("timeout", apierrors.IsTimeoutError(err)),
		zap.Bool("network", apierrors.IsNetworkError(err)),
	)

	switch flow {
	case FlowLoad:
		logger.Error("Error fetching messages", fields...)
	default:
		logger.Error("Error creating message", fields...)
	}
}
