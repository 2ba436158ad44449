package response

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"AttendEase/pkg/errors"
	"AttendEase/pkg/logger"
)

// ErrorResponse 统一的错误响应格式
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Details map[string]interface{} `json:"details,omitempty"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
}

// SuccessResponse 统一的成功响应格式
type SuccessResponse struct {
	Data interface{}            `json:"data"`
	Meta map[string]interface{} `json:"meta,omitempty"`
}

func errorToHTTPStatus(err error) int {
	def, ok := err.(errors.Definition)
	if !ok {
		return http.StatusInternalServerError
	}

	// 根据错误码映射 HTTP 状态码
	switch def.Code {
	case "USER_UNAVAILABLE", "ALREADY_CHECKED_IN":
		return http.StatusForbidden // 403
	case "NO_OPEN_CHECK_IN", "NO_CHECK_INS_FOUND",
		"ATTENDANCE_NOT_FOUND", "USER_NOT_FOUND", "EMPLOYEE_NOT_FOUND":
		return http.StatusNotFound // 404
	case "INVALID_CREDENTIALS", "UNAUTHORIZED":
		return http.StatusUnauthorized // 401
	case "VALIDATION_FAILED", "INVALID_ACTION",
		"INVALID_SORT_COLUMN", "EMAIL_ALREADY_REGISTERED":
		return http.StatusUnprocessableEntity // 422
	case "INVALID_REQUEST", "INVALID_USER_ID":
		return http.StatusBadRequest // 400
	case "TOO_MANY_REQUESTS":
		return http.StatusTooManyRequests // 429
	default:
		return http.StatusInternalServerError // 500
	}
}

const internalErrorMessage = "Internal server error"

// errorPayload 把 error 规整成对外的状态码和错误体。
// 业务错误（Definition）原样透出；其余一律收敛成固定的 500 文案，
// 存储/驱动细节只进日志，不进响应。
func errorPayload(err error) (int, ErrorDetail) {
	statusCode := errorToHTTPStatus(err)

	if def, ok := err.(errors.Definition); ok {
		return statusCode, ErrorDetail{Code: def.Code, Message: def.Message}
	}

	return statusCode, ErrorDetail{Code: "INTERNAL_ERROR", Message: internalErrorMessage}
}

// logInternalError 把被收敛的原始错误记到服务端日志。
func logInternalError(c *app.RequestContext, detail ErrorDetail, err error) {
	if detail.Code != "INTERNAL_ERROR" || logger.Logger == nil {
		return
	}
	logger.Logger.Error("Unhandled internal error",
		zap.String("path", string(c.Path())),
		zap.Error(err),
	)
}

// Error 返回错误响应
func Error(ctx context.Context, c *app.RequestContext, err error) {
	statusCode, detail := errorPayload(err)
	logInternalError(c, detail, err)

	c.JSON(statusCode, ErrorResponse{
		Error: detail,
	})
}

func ErrorWithDetails(ctx context.Context, c *app.RequestContext, err error, details map[string]interface{}) {
	statusCode, detail := errorPayload(err)
	logInternalError(c, detail, err)
	detail.Details = details

	c.JSON(statusCode, ErrorResponse{
		Error: detail,
	})
}

func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
	})
}

func SuccessWithMeta(ctx context.Context, c *app.RequestContext, data interface{}, meta map[string]interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func BindError(ctx context.Context, c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

// NoContent 返回 204 No Content（用于 DELETE 等操作）
func NoContent(ctx context.Context, c *app.RequestContext) {
	c.Status(http.StatusNoContent)
}
