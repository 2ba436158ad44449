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

// ListAttendance 考勤列表（筛选 + 分页 + 各状态聚合计数）
// GET /v1/attendance
func ListAttendance(ctx context.Context, c *app.RequestContext) {
	var query dto.ListAttendanceQuery
	if err := c.BindAndValidate(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}
	query.Normalize()

	records, total, totals, err := service.Attendance().List(ctx, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, dto.AttendanceListData{Records: records}, map[string]interface{}{
		"total":        total,
		"totals":       totals,
		"current_page": query.Page,
		"per_page":     query.Limit,
	})
}

// AttendanceAction 管理端覆写考勤状态
// PATCH /v1/attendance/:id/action
func AttendanceAction(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(ctx, c, errors.AttendanceNotFound)
		return
	}

	var req dto.AttendanceActionRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Attendance().SetStatus(ctx, id, req.Action)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// DeleteAttendance 管理端物理删除考勤记录
// DELETE /v1/attendance/:id
func DeleteAttendance(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(ctx, c, errors.AttendanceNotFound)
		return
	}

	if err := service.Attendance().Delete(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
