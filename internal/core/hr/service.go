package hr

import (
	"time"

	"github.com/ogurasousui/codex-grpc-hr/internal/core/employee"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// Now は呼び出し側のローカル時刻をそのまま返します。
func (realClock) Now() time.Time {
	return time.Now()
}

// HumanResources は雇用契約と勤務記録を扱うユースケースの公開インターフェースです。
type HumanResources interface {
	HireEmployee(emp *employee.Employee, startDate time.Time) error
	FireEmployee(employeeID int, endDate time.Time) error
	ReportHours(emp *employee.Employee, shiftStart time.Time, hours, minutes int) error
	GetWorkingEmployees() []*employee.Employee
	GetMonthlyReport(periodStart, periodEnd time.Time) ([]MonthlyReport, error)
}

// Service は契約と勤務記録のコレクションを専有し、業務ルールを適用します。
// 内部で排他制御は行いません。複数ゴルーチンから利用する場合は呼び出し側で直列化してください。
type Service struct {
	clock     Clock
	contracts []*Contract
	shifts    []*ShiftRecord
}

var _ HumanResources = (*Service)(nil)

// NewService は空のコレクションを持つ Service を生成します。
func NewService(clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{
		clock:     clock,
		contracts: make([]*Contract, 0),
		shifts:    make([]*ShiftRecord, 0),
	}
}

// HireEmployee は社員に新しい有効契約を追加します。
// 終了済みの契約は再雇用を妨げず、履歴として残ります。
func (s *Service) HireEmployee(emp *employee.Employee, startDate time.Time) error {
	if emp == nil {
		return ErrEmployeeCannotBeNull
	}

	if startDate.After(s.clock.Now()) {
		return ErrInvalidDateTimeInterval
	}

	if s.activeContract(emp.ID) != nil {
		return ErrEmployeeAlreadyWorkingForCompany
	}

	s.contracts = append(s.contracts, newContract(emp, startDate))
	return nil
}

// FireEmployee は社員の有効契約を endDate で終了します。
func (s *Service) FireEmployee(employeeID int, endDate time.Time) error {
	contract := s.activeContract(employeeID)
	if contract == nil {
		return ErrEmployeeNotWorkingForTheCompany
	}

	if endDate.After(s.clock.Now()) {
		return ErrInvalidDateTimeInterval
	}

	return contract.Terminate(endDate)
}

// ReportHours は有効契約を持つ社員の勤務を記録します。
func (s *Service) ReportHours(emp *employee.Employee, shiftStart time.Time, hours, minutes int) error {
	if emp == nil {
		return ErrEmployeeCannotBeNull
	}

	if err := validateDuration(hours, minutes); err != nil {
		return err
	}

	contract := s.activeContract(emp.ID)
	if contract == nil {
		return ErrEmployeeNotWorkingForTheCompany
	}

	if shiftStart.After(s.clock.Now()) || shiftStart.Before(contract.StartDate) {
		return ErrInvalidDateTimeInterval
	}

	if !durationFits(hours, minutes) {
		return ErrInvalidDateTimeInterval
	}

	record := newShiftRecord(contract.Employee, shiftStart, hours, minutes)
	if !record.EndDate.After(record.StartDate) {
		return ErrInvalidDateTimeInterval
	}

	if s.shiftExistsAt(emp.ID, record.StartDate) || s.shiftExistsAt(emp.ID, record.EndDate) {
		return ErrShiftRecordExistsForGivenTimePeriod
	}

	s.shifts = append(s.shifts, record)
	return nil
}

// GetWorkingEmployees は有効契約を持つ社員を契約の登録順で返します。
func (s *Service) GetWorkingEmployees() []*employee.Employee {
	working := make([]*employee.Employee, 0)
	for _, contract := range s.contracts {
		if contract.IsActive() {
			working = append(working, contract.Employee)
		}
	}
	return working
}

// GetMonthlyReport は期間内に完全に収まる勤務記録から月次給与を集計します。
func (s *Service) GetMonthlyReport(periodStart, periodEnd time.Time) ([]MonthlyReport, error) {
	if periodEnd.Before(periodStart) {
		return nil, ErrInvalidDateTimeInterval
	}

	filtered := make([]*ShiftRecord, 0, len(s.shifts))
	for _, record := range s.shifts {
		if !record.StartDate.Before(periodStart) && !record.EndDate.After(periodEnd) {
			filtered = append(filtered, record)
		}
	}

	return buildMonthlyReports(filtered), nil
}

// Contracts は登録済み契約のコピーを登録順で返します。
func (s *Service) Contracts() []*Contract {
	out := make([]*Contract, 0, len(s.contracts))
	for _, contract := range s.contracts {
		out = append(out, contract.clone())
	}
	return out
}

// ShiftRecords は登録済み勤務記録のコピーを登録順で返します。
func (s *Service) ShiftRecords() []*ShiftRecord {
	out := make([]*ShiftRecord, 0, len(s.shifts))
	for _, record := range s.shifts {
		clone := *record
		out = append(out, &clone)
	}
	return out
}

func (s *Service) activeContract(employeeID int) *Contract {
	for _, contract := range s.contracts {
		if contract.Employee.ID == employeeID && contract.IsActive() {
			return contract
		}
	}
	return nil
}

func (s *Service) shiftExistsAt(employeeID int, t time.Time) bool {
	for _, record := range s.shifts {
		if record.Contains(employeeID, t) {
			return true
		}
	}
	return false
}

func validateDuration(hours, minutes int) error {
	if hours < 0 || minutes < 0 {
		return ErrNegativeNumberNotAllowed
	}
	if minutes >= minutesPerHour {
		return ErrInvalidMinutes
	}
	return nil
}
