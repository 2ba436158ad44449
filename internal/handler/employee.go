package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"AttendEase/internal/model/dto"
	"AttendEase/internal/service"
	"AttendEase/pkg/errors"
	"AttendEase/pkg/response"
)

// CreateEmployee 新建员工（users + employees 两行）
// POST /v1/employees
func CreateEmployee(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateEmployeeRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Employee().Create(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// ListEmployees 员工列表（users ⋈ employees，筛选 + 分页）
// GET /v1/employees
func ListEmployees(ctx context.Context, c *app.RequestContext) {
	var query dto.ListEmployeesQuery
	if err := c.BindAndValidate(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}
	query.Normalize()

	rows, total, err := service.Employee().List(ctx, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, rows, map[string]interface{}{
		"total":        total,
		"current_page": query.Page,
		"per_page":     query.Limit,
	})
}

// TrashEmployee 把员工移入回收站（软删标记，非物理删除）
// PATCH /v1/employees/:id/trash
func TrashEmployee(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(ctx, c, errors.EmployeeNotFound)
		return
	}

	if err := service.Employee().Trash(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{
		"message": "Employee moved to trash",
	})
}
