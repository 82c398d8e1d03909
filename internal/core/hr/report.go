package hr

import (
	"time"

	"github.com/shopspring/decimal"
)

const minutesPerHour = 60

// MonthlyReport は社員ごと・暦月ごとの給与集計結果です。保存はされません。
type MonthlyReport struct {
	EmployeeID int
	Month      time.Month
	Year       int
	Salary     decimal.Decimal
}

type reportKey struct {
	month      time.Month
	year       int
	employeeID int
}

func keyOf(r *ShiftRecord) reportKey {
	return reportKey{
		month:      r.StartDate.Month(),
		year:       r.StartDate.Year(),
		employeeID: r.Employee.ID,
	}
}

// buildMonthlyReports は勤務記録を (月, 年, 社員) ごとにまとめ、初出順で返します。
func buildMonthlyReports(records []*ShiftRecord) []MonthlyReport {
	reports := make([]MonthlyReport, 0)
	index := make(map[reportKey]int)

	for _, record := range records {
		key := keyOf(record)
		pos, ok := index[key]
		if !ok {
			pos = len(reports)
			index[key] = pos
			reports = append(reports, MonthlyReport{
				EmployeeID: key.employeeID,
				Month:      key.month,
				Year:       key.year,
				Salary:     decimal.Zero,
			})
		}
		reports[pos].Salary = reports[pos].Salary.Add(shiftSalary(record))
	}

	return reports
}

// shiftSalary は勤務一回分の給与を計算します。
// 分は整数除算で時間へ換算するため、60 未満の端数は支給対象になりません。
func shiftSalary(r *ShiftRecord) decimal.Decimal {
	totalHours := r.HoursWorked + r.MinutesWorked/minutesPerHour
	return decimal.NewFromInt(int64(totalHours)).Mul(r.Employee.HourlyRate)
}
