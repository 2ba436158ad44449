package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"AttendEase/internal/model/dto"
	"AttendEase/internal/service"
	"AttendEase/pkg/response"
)

// CheckIn 员工签到
// POST /v1/check-in
func CheckIn(ctx context.Context, c *app.RequestContext) {
	var req dto.CheckInRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.CheckIn().ProcessCheckIn(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// CheckOut 员工签退
// POST /v1/check-out
func CheckOut(ctx context.Context, c *app.RequestContext) {
	var req dto.CheckOutRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.CheckIn().ProcessCheckOut(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetRecentCheckIns 查询最近 30 天签到记录及平均时刻。
// user_id 可选，不传时返回全员记录。
// GET /v1/check-ins/recent
func GetRecentCheckIns(ctx context.Context, c *app.RequestContext) {
	var query dto.RecentCheckInsQuery
	if err := c.BindAndValidate(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.CheckIn().GetRecentCheckIns(ctx, query.UserID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
