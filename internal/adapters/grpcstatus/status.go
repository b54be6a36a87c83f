// Package grpcstatus translates outcomes and faults into gRPC statuses for
// services exposed over gRPC. Business failures keep their code as the
// ErrorInfo reason; faults never leak their message.
package grpcstatus

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"

	"github.com/jsamuelsen11/go-service-common/internal/domain/result"
)

// ErrStatusFromSuccess is the panic value when FromResult is given a
// successful outcome.
var ErrStatusFromSuccess = errors.New("grpcstatus: can't convert a successful result to a status")

const faultMessage = "An unexpected error occurred"

// Code returns the gRPC code for an error kind.
func Code(kind result.Kind) codes.Code {
	switch kind {
	case result.KindValidation:
		return codes.InvalidArgument
	case result.KindProblem:
		return codes.FailedPrecondition
	case result.KindNotFound:
		return codes.NotFound
	case result.KindConflict:
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

// FromResult converts a failed outcome into a status. domain names the
// ErrorInfo domain, usually the service name. Validation errors also carry
// a BadRequest with one field violation per sub-error. It panics with
// ErrStatusFromSuccess for a successful outcome.
func FromResult(outcome result.Outcome, domain string) *status.Status {
	if outcome.IsSuccess() {
		panic(ErrStatusFromSuccess)
	}

	e := outcome.Err()
	code := Code(e.Kind())
	if code == codes.Internal {
		return fault(domain, e.Code())
	}

	st := status.New(code, e.Description())

	details := []protoadapt.MessageV1{&errdetails.ErrorInfo{
		Reason: e.Code(),
		Domain: domain,
	}}
	if e.IsValidationError() {
		details = append(details, badRequest(e.Errors()))
	}

	return withDetails(st, details...)
}

// FromError converts a fault into an Internal status with a generic message.
// A status already carried by err is returned unchanged. nil maps to nil.
func FromError(err error) *status.Status {
	if err == nil {
		return nil
	}
	if st, ok := status.FromError(err); ok {
		return st
	}
	return status.New(codes.Internal, faultMessage)
}

// Err is FromResult(outcome, domain).Err().
func Err(outcome result.Outcome, domain string) error {
	return FromResult(outcome, domain).Err()
}

func fault(domain, reason string) *status.Status {
	st := status.New(codes.Internal, faultMessage)
	if reason == "" {
		return st
	}
	return withDetails(st, &errdetails.ErrorInfo{Reason: reason, Domain: domain})
}

func badRequest(errs []result.Error) *errdetails.BadRequest {
	br := &errdetails.BadRequest{
		FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(errs)),
	}
	for _, e := range errs {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       e.Code(),
			Description: e.Description(),
		})
	}
	return br
}

// withDetails attaches details, falling back to the bare status if they
// cannot be encoded.
func withDetails(st *status.Status, details ...protoadapt.MessageV1) *status.Status {
	if with, err := st.WithDetails(details...); err == nil {
		return with
	}
	return st
}
