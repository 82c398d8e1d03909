package hr

import (
	"time"

	"github.com/ogurasousui/codex-grpc-hr/internal/core/employee"
)

// Contract は社員ひとりの雇用期間を表します。
// EndDate が nil の間は有効 (在籍中) で、終了は一度だけ行われます。
type Contract struct {
	Employee  *employee.Employee
	StartDate time.Time
	EndDate   *time.Time
}

func newContract(emp *employee.Employee, start time.Time) *Contract {
	return &Contract{Employee: emp, StartDate: start}
}

// IsActive は契約が終了していない場合に true を返します。
func (c *Contract) IsActive() bool {
	return c.EndDate == nil
}

// Terminate は契約を終了状態へ遷移させます。
func (c *Contract) Terminate(end time.Time) error {
	if !c.IsActive() {
		return ErrContractAlreadyTerminated
	}
	if end.Before(c.StartDate) {
		return ErrContractStartDatePassesEndDate
	}
	c.EndDate = &end
	return nil
}

func (c *Contract) clone() *Contract {
	out := *c
	if c.EndDate != nil {
		end := *c.EndDate
		out.EndDate = &end
	}
	return &out
}
