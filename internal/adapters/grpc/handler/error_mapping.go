package handler

import (
	"errors"

	"github.com/ogurasousui/codex-grpc-hr/internal/core/employee"
	"github.com/ogurasousui/codex-grpc-hr/internal/core/hr"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, hr.ErrEmployeeCannotBeNull),
		errors.Is(err, hr.ErrInvalidDateTimeInterval),
		errors.Is(err, hr.ErrNegativeNumberNotAllowed),
		errors.Is(err, hr.ErrInvalidMinutes),
		errors.Is(err, employee.ErrInvalidID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, hr.ErrEmployeeAlreadyWorkingForCompany):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, hr.ErrEmployeeNotWorkingForTheCompany),
		errors.Is(err, hr.ErrContractStartDatePassesEndDate),
		errors.Is(err, hr.ErrShiftRecordExistsForGivenTimePeriod),
		errors.Is(err, hr.ErrContractAlreadyTerminated):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
