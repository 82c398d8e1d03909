package hr

import "errors"

var (
	// ErrEmployeeCannotBeNull は社員が指定されていない場合に返却されます。
	ErrEmployeeCannotBeNull = errors.New("hr: employee cannot be null")
	// ErrInvalidDateTimeInterval は日時が時間順序の制約に違反する場合に返却されます。
	ErrInvalidDateTimeInterval = errors.New("hr: invalid date time interval")
	// ErrEmployeeAlreadyWorkingForCompany は有効な契約が既に存在する場合に返却されます。
	ErrEmployeeAlreadyWorkingForCompany = errors.New("hr: employee is already working for company")
	// ErrEmployeeNotWorkingForTheCompany は有効な契約が存在しない場合に返却されます。
	ErrEmployeeNotWorkingForTheCompany = errors.New("hr: employee not working for the company")
	// ErrContractStartDatePassesEndDate は契約終了日が開始日より前の場合に返却されます。
	ErrContractStartDatePassesEndDate = errors.New("hr: contract start date cannot be later than end date")
	// ErrNegativeNumberNotAllowed は勤務時間・分が負の場合に返却されます。
	ErrNegativeNumberNotAllowed = errors.New("hr: negative numeric values are not allowed")
	// ErrInvalidMinutes は勤務分が 60 以上の場合に返却されます。
	ErrInvalidMinutes = errors.New("hr: minutes must be less than 60")
	// ErrShiftRecordExistsForGivenTimePeriod は勤務記録が既存の記録と重なる場合に返却されます。
	ErrShiftRecordExistsForGivenTimePeriod = errors.New("hr: shift record exists for given time period")
	// ErrContractAlreadyTerminated は終了済みの契約を再度終了しようとした場合に返却されます。
	ErrContractAlreadyTerminated = errors.New("hr: contract already terminated")
)
