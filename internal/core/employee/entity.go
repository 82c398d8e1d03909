package employee

import "github.com/shopspring/decimal"

// Employee は雇用管理で参照される社員の値オブジェクトです。
// 呼び出し側が生成・所有し、契約や勤務記録からは参照のみされます。
type Employee struct {
	ID         int
	FullName   string
	HourlyRate decimal.Decimal
}
