package grpcserver

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/and161185/vidshare/internal/api"
)

// LoggingUnary logs one line per call: method, code, duration, peer and caller.
// Payloads are never logged.
func LoggingUnary(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		code := status.Code(err)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Stringer("code", code),
			zap.Duration("dur", time.Since(start)),
		}
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			fields = append(fields, zap.String("peer", p.Addr.String()))
		}
		log.Log(levelFor(code), "grpc", fields...)
		return resp, err
	}
}

func levelFor(code codes.Code) zapcore.Level {
	switch code {
	case codes.Unavailable, codes.Internal, codes.Unknown:
		return zap.WarnLevel
	}
	return zap.InfoLevel
}

// RecoverUnary turns a handler panic into codes.Internal.
func RecoverUnary(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("handler panic",
					zap.String("method", info.FullMethod),
					zap.Any("reason", r),
					zap.Stack("stack"),
				)
				resp, err = nil, status.Error(codes.Internal, "internal")
			}
		}()
		return next(ctx, req)
	}
}

// TokenVerifier resolves a bearer token to the user it was issued to.
type TokenVerifier interface {
	VerifyToken(token string) (uuid.UUID, error)
}

// AuthUnary guards VidShare methods. Methods in public accept anonymous calls
// but still pick up the caller when a valid token is sent. Other services
// (health, reflection) are not touched.
func AuthUnary(v TokenVerifier, public map[string]bool) grpc.UnaryServerInterceptor {
	prefix := "/" + api.ServiceName + "/"
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if !strings.HasPrefix(info.FullMethod, prefix) {
			return next(ctx, req)
		}
		tok, found := bearerToken(ctx)
		if public[info.FullMethod] {
			if found {
				if id, err := v.VerifyToken(tok); err == nil {
					ctx = ContextWithActor(ctx, id)
				}
			}
			return next(ctx, req)
		}
		if !found {
			return nil, status.Error(codes.Unauthenticated, "missing bearer token")
		}
		id, err := v.VerifyToken(tok)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		return next(ContextWithActor(ctx, id), req)
	}
}

// bearerToken returns the first non-empty "Bearer" credential in the
// authorization metadata. The scheme is case-insensitive.
func bearerToken(ctx context.Context) (string, bool) {
	md, _ := metadata.FromIncomingContext(ctx)
	for _, h := range md.Get("authorization") {
		scheme, tok, ok := strings.Cut(strings.TrimSpace(h), " ")
		if !ok || !strings.EqualFold(scheme, "bearer") {
			continue
		}
		if tok = strings.TrimSpace(tok); tok != "" {
			return tok, true
		}
	}
	return "", false
}
