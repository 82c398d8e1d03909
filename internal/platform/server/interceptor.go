package server

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader はリクエスト ID を運ぶメタデータのキーです。
const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

// RequestIDFromContext はインターセプターが付与したリクエスト ID を返します。
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// UnaryLoggingInterceptor はリクエスト ID を付与し、メソッド・ステータス・所要時間を記録します。
// 受信メタデータに x-request-id があればそれを引き継ぎます。
func UnaryLoggingInterceptor(logger logrus.FieldLogger) grpc.UnaryServerInterceptor {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		requestID := incomingRequestID(ctx)
		ctx = context.WithValue(ctx, requestIDKey{}, requestID)
		if err := grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID)); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     info.FullMethod,
			}).Debug("request id header not sent")
		}

		started := time.Now()
		resp, err := next(ctx, req)

		entry := logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     info.FullMethod,
			"code":       status.Code(err).String(),
			"duration":   time.Since(started),
		})
		if err != nil {
			entry.WithError(err).Warn("grpc call failed")
		} else {
			entry.Info("grpc call")
		}

		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDHeader); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.NewString()
}
