package handler

import (
	"context"

	"github.com/ogurasousui/codex-grpc-hr/internal/core/company"
	"github.com/ogurasousui/codex-grpc-hr/internal/core/employee"
	"github.com/ogurasousui/codex-grpc-hr/internal/core/hr"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// HumanResourceGrpcHandler は HumanResourceService の gRPC 実装です。
// 社員は名簿から解決し、雇用・勤務・給与集計は会社の窓口へ委譲します。
type HumanResourceGrpcHandler struct {
	company   company.UseCase
	directory employee.UseCase
}

var _ HumanResourceServiceServer = (*HumanResourceGrpcHandler)(nil)

// NewHumanResourceGrpcHandler は HumanResourceGrpcHandler を生成します。
func NewHumanResourceGrpcHandler(c company.UseCase, directory employee.UseCase) *HumanResourceGrpcHandler {
	return &HumanResourceGrpcHandler{company: c, directory: directory}
}

// AddEmployee は名簿の社員を雇用します。
func (h *HumanResourceGrpcHandler) AddEmployee(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := requireStruct(req); err != nil {
		return nil, err
	}

	id, err := intField(req, "employee_id")
	if err != nil {
		return nil, err
	}
	start, err := timeField(req, "contract_start")
	if err != nil {
		return nil, err
	}

	emp, err := h.directory.GetEmployee(ctx, employee.GetEmployeeInput{ID: id})
	if err != nil {
		return nil, toStatusError(err)
	}

	if err := h.company.AddEmployee(emp, start); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// RemoveEmployee は社員の有効契約を終了します。
func (h *HumanResourceGrpcHandler) RemoveEmployee(_ context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := requireStruct(req); err != nil {
		return nil, err
	}

	id, err := intField(req, "employee_id")
	if err != nil {
		return nil, err
	}
	end, err := timeField(req, "contract_end")
	if err != nil {
		return nil, err
	}

	if err := h.company.RemoveEmployee(id, end); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// ReportHours は在籍中の社員の勤務を記録します。
func (h *HumanResourceGrpcHandler) ReportHours(_ context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := requireStruct(req); err != nil {
		return nil, err
	}

	id, err := intField(req, "employee_id")
	if err != nil {
		return nil, err
	}
	start, err := timeField(req, "shift_start")
	if err != nil {
		return nil, err
	}
	hours, err := intField(req, "hours")
	if err != nil {
		return nil, err
	}
	minutes, err := intField(req, "minutes")
	if err != nil {
		return nil, err
	}

	if err := h.company.ReportHours(id, start, hours, minutes); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// ListEmployees は在籍中の社員を返します。
func (h *HumanResourceGrpcHandler) ListEmployees(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	working := h.company.Employees()

	items := make([]any, 0, len(working))
	for _, emp := range working {
		items = append(items, toEmployeeValue(emp))
	}

	return newResponse(map[string]any{
		"company":   h.company.Name(),
		"employees": items,
	})
}

// GetMonthlyReport は期間内の月次給与集計を返します。
func (h *HumanResourceGrpcHandler) GetMonthlyReport(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireStruct(req); err != nil {
		return nil, err
	}

	periodStart, err := timeField(req, "period_start")
	if err != nil {
		return nil, err
	}
	periodEnd, err := timeField(req, "period_end")
	if err != nil {
		return nil, err
	}

	reports, err := h.company.GetMonthlyReport(periodStart, periodEnd)
	if err != nil {
		return nil, toStatusError(err)
	}

	items := make([]any, 0, len(reports))
	for _, r := range reports {
		items = append(items, toReportValue(r))
	}

	return newResponse(map[string]any{"reports": items})
}

func toEmployeeValue(emp *employee.Employee) map[string]any {
	return map[string]any{
		"id":          emp.ID,
		"full_name":   emp.FullName,
		"hourly_rate": emp.HourlyRate.StringFixed(2),
	}
}

func toReportValue(r hr.MonthlyReport) map[string]any {
	return map[string]any{
		"employee_id": r.EmployeeID,
		"month":       int(r.Month),
		"year":        r.Year,
		"salary":      r.Salary.StringFixed(2),
	}
}

func newResponse(fields map[string]any) (*structpb.Struct, error) {
	resp, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return resp, nil
}
