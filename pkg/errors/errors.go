package errors

import "errors"

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	InvalidCredentials = Definition{Code: "INVALID_CREDENTIALS", Message: "Invalid credentials"}
	Unauthorized       = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	InvalidUserID      = Definition{Code: "INVALID_USER_ID", Message: "Invalid user ID format"}
)

// 打卡/考勤核心错误。
var (
	UserUnavailable  = Definition{Code: "USER_UNAVAILABLE", Message: "User is not active or is trashed"}
	AlreadyCheckedIn = Definition{Code: "ALREADY_CHECKED_IN", Message: "Please check out first."}
	NoOpenCheckIn    = Definition{Code: "NO_OPEN_CHECK_IN", Message: "No active check-in found for today"}
	NoCheckInsFound  = Definition{Code: "NO_CHECK_INS_FOUND", Message: "No check-ins found for this user in the last 30 days"}
)

// 考勤管理错误。
var (
	AttendanceNotFound = Definition{Code: "ATTENDANCE_NOT_FOUND", Message: "Attendance record not found"}
	InvalidAction      = Definition{Code: "INVALID_ACTION", Message: "Invalid attendance action"}
	InvalidSortColumn  = Definition{Code: "INVALID_SORT_COLUMN", Message: "Invalid sort column"}
)

// 员工目录错误。
var (
	UserNotFound           = Definition{Code: "USER_NOT_FOUND", Message: "User not found"}
	EmailAlreadyRegistered = Definition{Code: "EMAIL_ALREADY_REGISTERED", Message: "Email already registered"}
	EmployeeNotFound       = Definition{Code: "EMPLOYEE_NOT_FOUND", Message: "No employee found or status already set"}
)

// 通用错误。
var (
	ValidationFailed = Definition{Code: "VALIDATION_FAILED", Message: "Validation failed"}
	TooManyRequests  = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests, please try again later"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	InvalidCredentials.Code:     InvalidCredentials,
	Unauthorized.Code:           Unauthorized,
	InvalidUserID.Code:          InvalidUserID,
	UserUnavailable.Code:        UserUnavailable,
	AlreadyCheckedIn.Code:       AlreadyCheckedIn,
	NoOpenCheckIn.Code:          NoOpenCheckIn,
	NoCheckInsFound.Code:        NoCheckInsFound,
	AttendanceNotFound.Code:     AttendanceNotFound,
	InvalidAction.Code:          InvalidAction,
	InvalidSortColumn.Code:      InvalidSortColumn,
	UserNotFound.Code:           UserNotFound,
	EmailAlreadyRegistered.Code: EmailAlreadyRegistered,
	EmployeeNotFound.Code:       EmployeeNotFound,
	ValidationFailed.Code:       ValidationFailed,
	TooManyRequests.Code:        TooManyRequests,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}

// token 包内部使用的哨兵错误。
var (
	ErrTokenGeneratorNotInitialized = errors.New("token generator is not initialized")
	ErrUnexpectedSigningMethod      = errors.New("unexpected signing method")
	ErrInvalidToken                 = errors.New("invalid token")
	ErrInvalidTokenClaims           = errors.New("invalid token claims")
	ErrInvalidTokenType             = errors.New("invalid token type")
	ErrUserIDNotFound               = errors.New("user id not found in token claims")
)
