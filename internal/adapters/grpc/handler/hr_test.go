package handler

import (
	"context"
	"testing"
	"time"

	"github.com/ogurasousui/codex-grpc-hr/internal/core/company"
	"github.com/ogurasousui/codex-grpc-hr/internal/core/employee"
	"github.com/ogurasousui/codex-grpc-hr/internal/core/hr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type stubCompanyUseCase struct {
	addEmployee *employee.Employee
	addStart    time.Time
	addErr      error

	removeID  int
	removeEnd time.Time
	removeErr error

	reportID      int
	reportStart   time.Time
	reportHours   int
	reportMinutes int
	reportErr     error

	working []*employee.Employee

	periodStart time.Time
	periodEnd   time.Time
	monthlyOut  []hr.MonthlyReport
	monthlyErr  error
}

var _ company.UseCase = (*stubCompanyUseCase)(nil)

func (s *stubCompanyUseCase) Name() string { return "Default Company" }

func (s *stubCompanyUseCase) AddEmployee(emp *employee.Employee, start time.Time) error {
	s.addEmployee = emp
	s.addStart = start
	return s.addErr
}

func (s *stubCompanyUseCase) RemoveEmployee(id int, end time.Time) error {
	s.removeID = id
	s.removeEnd = end
	return s.removeErr
}

func (s *stubCompanyUseCase) ReportHours(id int, at time.Time, hours, minutes int) error {
	s.reportID = id
	s.reportStart = at
	s.reportHours = hours
	s.reportMinutes = minutes
	return s.reportErr
}

func (s *stubCompanyUseCase) Employees() []*employee.Employee {
	return s.working
}

func (s *stubCompanyUseCase) GetMonthlyReport(periodStart, periodEnd time.Time) ([]hr.MonthlyReport, error) {
	s.periodStart = periodStart
	s.periodEnd = periodEnd
	return s.monthlyOut, s.monthlyErr
}

type stubDirectory struct {
	getInput employee.GetEmployeeInput
	getOut   *employee.Employee
	getErr   error
}

func (s *stubDirectory) GetEmployee(_ context.Context, in employee.GetEmployeeInput) (*employee.Employee, error) {
	s.getInput = in
	return s.getOut, s.getErr
}

func (s *stubDirectory) ListEmployees(context.Context) ([]*employee.Employee, error) {
	if s.getOut == nil {
		return []*employee.Employee{}, nil
	}
	return []*employee.Employee{s.getOut}, nil
}

func mustStruct(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()

	s, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return s
}

func defaultEmployee() *employee.Employee {
	return &employee.Employee{ID: 1, FullName: "Default Surname", HourlyRate: decimal.RequireFromString("8.50")}
}

func TestHumanResourceGrpcHandler_AddEmployee(t *testing.T) {
	t.Parallel()

	emp := defaultEmployee()
	stubCompany := &stubCompanyUseCase{}
	directory := &stubDirectory{getOut: emp}
	h := NewHumanResourceGrpcHandler(stubCompany, directory)

	_, err := h.AddEmployee(context.Background(), mustStruct(t, map[string]any{
		"employee_id":    1,
		"contract_start": "2019-12-01T00:00:00",
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, directory.getInput.ID)
	assert.Same(t, emp, stubCompany.addEmployee)
	assert.Equal(t, time.Date(2019, 12, 1, 0, 0, 0, 0, time.Local), stubCompany.addStart)
}

func TestHumanResourceGrpcHandler_AddEmployee_DirectoryMiss(t *testing.T) {
	t.Parallel()

	stubCompany := &stubCompanyUseCase{}
	h := NewHumanResourceGrpcHandler(stubCompany, &stubDirectory{getErr: employee.ErrEmployeeNotFound})

	_, err := h.AddEmployee(context.Background(), mustStruct(t, map[string]any{
		"employee_id":    42,
		"contract_start": "2019-12-01T00:00:00",
	}))
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Nil(t, stubCompany.addEmployee)
}

func TestHumanResourceGrpcHandler_AddEmployee_AlreadyWorking(t *testing.T) {
	t.Parallel()

	stubCompany := &stubCompanyUseCase{addErr: hr.ErrEmployeeAlreadyWorkingForCompany}
	h := NewHumanResourceGrpcHandler(stubCompany, &stubDirectory{getOut: defaultEmployee()})

	_, err := h.AddEmployee(context.Background(), mustStruct(t, map[string]any{
		"employee_id":    1,
		"contract_start": "2019-12-01T00:00:00",
	}))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestHumanResourceGrpcHandler_InvalidRequests(t *testing.T) {
	t.Parallel()

	h := NewHumanResourceGrpcHandler(&stubCompanyUseCase{}, &stubDirectory{getOut: defaultEmployee()})
	ctx := context.Background()

	cases := []struct {
		name string
		call func() error
	}{
		{name: "nil add", call: func() error { _, err := h.AddEmployee(ctx, nil); return err }},
		{name: "missing id", call: func() error {
			_, err := h.AddEmployee(ctx, mustStruct(t, map[string]any{"contract_start": "2019-12-01T00:00:00"}))
			return err
		}},
		{name: "fractional id", call: func() error {
			_, err := h.RemoveEmployee(ctx, mustStruct(t, map[string]any{"employee_id": 1.5, "contract_end": "2020-01-01T00:00:00"}))
			return err
		}},
		{name: "id as string", call: func() error {
			_, err := h.RemoveEmployee(ctx, mustStruct(t, map[string]any{"employee_id": "1", "contract_end": "2020-01-01T00:00:00"}))
			return err
		}},
		{name: "bad date layout", call: func() error {
			_, err := h.RemoveEmployee(ctx, mustStruct(t, map[string]any{"employee_id": 1, "contract_end": "2020-01-01"}))
			return err
		}},
		{name: "missing minutes", call: func() error {
			_, err := h.ReportHours(ctx, mustStruct(t, map[string]any{"employee_id": 1, "shift_start": "2020-01-02T08:00:00", "hours": 8}))
			return err
		}},
		{name: "missing period end", call: func() error {
			_, err := h.GetMonthlyReport(ctx, mustStruct(t, map[string]any{"period_start": "2020-01-01T00:00:00"}))
			return err
		}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, codes.InvalidArgument, status.Code(tc.call()))
		})
	}
}

func TestHumanResourceGrpcHandler_RemoveEmployee(t *testing.T) {
	t.Parallel()

	stubCompany := &stubCompanyUseCase{}
	h := NewHumanResourceGrpcHandler(stubCompany, &stubDirectory{})

	_, err := h.RemoveEmployee(context.Background(), mustStruct(t, map[string]any{
		"employee_id":  3,
		"contract_end": "2020-02-01T00:00:00",
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, stubCompany.removeID)
	assert.Equal(t, time.Date(2020, 2, 1, 0, 0, 0, 0, time.Local), stubCompany.removeEnd)

	stubCompany.removeErr = hr.ErrEmployeeNotWorkingForTheCompany
	_, err = h.RemoveEmployee(context.Background(), mustStruct(t, map[string]any{
		"employee_id":  3,
		"contract_end": "2020-02-01T00:00:00",
	}))
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestHumanResourceGrpcHandler_ReportHours(t *testing.T) {
	t.Parallel()

	stubCompany := &stubCompanyUseCase{}
	h := NewHumanResourceGrpcHandler(stubCompany, &stubDirectory{})

	_, err := h.ReportHours(context.Background(), mustStruct(t, map[string]any{
		"employee_id": 1,
		"shift_start": "2020-01-02T08:00:00",
		"hours":       10,
		"minutes":     15,
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, stubCompany.reportID)
	assert.Equal(t, time.Date(2020, 1, 2, 8, 0, 0, 0, time.Local), stubCompany.reportStart)
	assert.Equal(t, 10, stubCompany.reportHours)
	assert.Equal(t, 15, stubCompany.reportMinutes)

	stubCompany.reportErr = hr.ErrInvalidMinutes
	_, err = h.ReportHours(context.Background(), mustStruct(t, map[string]any{
		"employee_id": 1,
		"shift_start": "2020-01-02T08:00:00",
		"hours":       1,
		"minutes":     60,
	}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHumanResourceGrpcHandler_ListEmployees(t *testing.T) {
	t.Parallel()

	h := NewHumanResourceGrpcHandler(&stubCompanyUseCase{working: []*employee.Employee{defaultEmployee()}}, &stubDirectory{})

	resp, err := h.ListEmployees(context.Background(), &structpb.Struct{})
	require.NoError(t, err)

	got := resp.AsMap()
	assert.Equal(t, "Default Company", got["company"])

	items, ok := got["employees"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	first := items[0].(map[string]any)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Default Surname", first["full_name"])
	assert.Equal(t, "8.50", first["hourly_rate"])
}

func TestHumanResourceGrpcHandler_GetMonthlyReport(t *testing.T) {
	t.Parallel()

	stubCompany := &stubCompanyUseCase{monthlyOut: []hr.MonthlyReport{
		{EmployeeID: 1, Month: time.January, Year: 2020, Salary: decimal.RequireFromString("153")},
		{EmployeeID: 2, Month: time.January, Year: 2020, Salary: decimal.RequireFromString("73.5")},
	}}
	h := NewHumanResourceGrpcHandler(stubCompany, &stubDirectory{})

	resp, err := h.GetMonthlyReport(context.Background(), mustStruct(t, map[string]any{
		"period_start": "2020-01-01T00:00:00",
		"period_end":   "2020-01-31T23:59:59",
	}))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local), stubCompany.periodStart)
	assert.Equal(t, time.Date(2020, 1, 31, 23, 59, 59, 0, time.Local), stubCompany.periodEnd)

	items := resp.AsMap()["reports"].([]any)
	require.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, float64(1), first["employee_id"])
	assert.Equal(t, float64(1), first["month"])
	assert.Equal(t, float64(2020), first["year"])
	assert.Equal(t, "153.00", first["salary"])
	assert.Equal(t, "73.50", items[1].(map[string]any)["salary"])
}

func TestHumanResourceGrpcHandler_GetMonthlyReport_InvalidInterval(t *testing.T) {
	t.Parallel()

	h := NewHumanResourceGrpcHandler(&stubCompanyUseCase{monthlyErr: hr.ErrInvalidDateTimeInterval}, &stubDirectory{})

	_, err := h.GetMonthlyReport(context.Background(), mustStruct(t, map[string]any{
		"period_start": "2020-02-01T00:00:00",
		"period_end":   "2020-01-01T00:00:00",
	}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
