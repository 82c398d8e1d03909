package company

import (
	"io"
	"sync"
	"time"

	"github.com/ogurasousui/codex-grpc-hr/internal/core/employee"
	"github.com/ogurasousui/codex-grpc-hr/internal/core/hr"
	"github.com/sirupsen/logrus"
)

// Company は人事サービスへの呼び出しを仲介する窓口です。
// 人事サービス自体は排他制御を持たないため、公開メソッドはすべて単一のロックで直列化されます。
type Company struct {
	name   string
	hr     hr.HumanResources
	logger logrus.FieldLogger

	mu sync.Mutex
}

// UseCase は Company の公開インターフェースです。
type UseCase interface {
	Name() string
	AddEmployee(emp *employee.Employee, contractStart time.Time) error
	RemoveEmployee(employeeID int, contractEnd time.Time) error
	ReportHours(employeeID int, at time.Time, hours, minutes int) error
	Employees() []*employee.Employee
	GetMonthlyReport(periodStart, periodEnd time.Time) ([]hr.MonthlyReport, error)
}

var _ UseCase = (*Company)(nil)

// New は Company を生成します。logger が nil の場合はログを出力しません。
func New(name string, svc hr.HumanResources, logger logrus.FieldLogger) *Company {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Company{
		name:   name,
		hr:     svc,
		logger: logger.WithField("company", name),
	}
}

// Name は会社名を返します。
func (c *Company) Name() string {
	return c.name
}

// AddEmployee は社員を雇用します。
func (c *Company) AddEmployee(emp *employee.Employee, contractStart time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.hr.HireEmployee(emp, contractStart)

	fields := logrus.Fields{"contract_start": contractStart}
	if emp != nil {
		fields["employee_id"] = emp.ID
	}
	c.logResult("employee hired", fields, err)
	return err
}

// RemoveEmployee は社員の契約を終了します。
func (c *Company) RemoveEmployee(employeeID int, contractEnd time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.hr.FireEmployee(employeeID, contractEnd)
	c.logResult("employee removed", logrus.Fields{"employee_id": employeeID, "contract_end": contractEnd}, err)
	return err
}

// ReportHours は在籍中の社員を ID で解決し、勤務を記録します。
func (c *Company) ReportHours(employeeID int, at time.Time, hours, minutes int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fields := logrus.Fields{
		"employee_id": employeeID,
		"shift_start": at,
		"hours":       hours,
		"minutes":     minutes,
	}

	emp := c.findWorkingEmployee(employeeID)
	if emp == nil {
		c.logResult("hours reported", fields, hr.ErrEmployeeNotWorkingForTheCompany)
		return hr.ErrEmployeeNotWorkingForTheCompany
	}

	err := c.hr.ReportHours(emp, at, hours, minutes)
	c.logResult("hours reported", fields, err)
	return err
}

// Employees は在籍中の社員を返します。
func (c *Company) Employees() []*employee.Employee {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hr.GetWorkingEmployees()
}

// GetMonthlyReport は期間内の月次給与集計を返します。
func (c *Company) GetMonthlyReport(periodStart, periodEnd time.Time) ([]hr.MonthlyReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	reports, err := c.hr.GetMonthlyReport(periodStart, periodEnd)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"period_start": periodStart,
			"period_end":   periodEnd,
		}).Warn("monthly report rejected")
		return nil, err
	}
	return reports, nil
}

func (c *Company) findWorkingEmployee(employeeID int) *employee.Employee {
	for _, emp := range c.hr.GetWorkingEmployees() {
		if emp.ID == employeeID {
			return emp
		}
	}
	return nil
}

func (c *Company) logResult(msg string, fields logrus.Fields, err error) {
	entry := c.logger.WithFields(fields)
	if err != nil {
		entry.WithError(err).Warn(msg + " rejected")
		return
	}
	entry.Info(msg)
}
