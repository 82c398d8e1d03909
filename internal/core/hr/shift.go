package hr

import (
	"math"
	"time"

	"github.com/ogurasousui/codex-grpc-hr/internal/core/employee"
)

// ShiftRecord は報告された一回分の勤務を表します。生成後は変更されません。
type ShiftRecord struct {
	Employee      *employee.Employee
	StartDate     time.Time
	EndDate       time.Time
	HoursWorked   int
	MinutesWorked int
}

func newShiftRecord(emp *employee.Employee, start time.Time, hours, minutes int) *ShiftRecord {
	return &ShiftRecord{
		Employee:      emp,
		StartDate:     start,
		EndDate:       shiftEnd(start, hours, minutes),
		HoursWorked:   hours,
		MinutesWorked: minutes,
	}
}

// durationFits は hours 時間 minutes 分が time.Duration に収まるかを判定します。
func durationFits(hours, minutes int) bool {
	limit := (math.MaxInt64 - int64(minutes)*int64(time.Minute)) / int64(time.Hour)
	return int64(hours) <= limit
}

func shiftEnd(start time.Time, hours, minutes int) time.Time {
	return start.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)
}

// Contains は t が同じ社員の勤務区間 (StartDate, EndDate) の内側にあるかを判定します。
// 境界と一致する時刻は含みません。
func (r *ShiftRecord) Contains(employeeID int, t time.Time) bool {
	return r.Employee.ID == employeeID && r.StartDate.Before(t) && r.EndDate.After(t)
}
