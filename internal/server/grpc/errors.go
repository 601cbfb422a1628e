package grpcserver

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/and161185/vidshare/internal/errs"
)

// toStatus maps service errors onto gRPC status codes. Unclassified errors are
// logged and reported as Unavailable without leaking store details.
func (s *Server) toStatus(method string, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidReference), errors.Is(err, errs.ErrInvalidParameter):
		return badRequest(err)
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, errs.ErrConflict):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, errs.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}
	s.log.Error("request failed", zap.String("method", method), zap.Error(err))
	return status.Error(codes.Unavailable, "store unavailable")
}

// badRequest attaches the offending field as an errdetails.BadRequest violation.
func badRequest(err error) error {
	st := status.New(codes.InvalidArgument, err.Error())
	var fe *errs.FieldError
	if !errors.As(err, &fe) {
		return st.Err()
	}
	withDetails, derr := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: fe.Field, Description: fe.Err.Error()},
		},
	})
	if derr != nil {
		return st.Err()
	}
	return withDetails.Err()
}
