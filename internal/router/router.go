package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"AttendEase/internal/handler"
	"AttendEase/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())

	v1 := h.Group("/v1")
	v1.Use(middleware.GeneralRateLimitMiddleware())

	// 认证相关路由
	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware()) // 登录接口限流
	{
		auth.POST("/login", handler.Login)
		auth.POST("/token/refresh", handler.RefreshToken)
	}

	// 打卡路由
	checkIn := v1.Group("")
	checkIn.Use(middleware.AuthMiddleware())
	{
		checkIn.POST("/check-in", handler.CheckIn)
		checkIn.POST("/check-out", handler.CheckOut)
		checkIn.GET("/check-ins/recent", handler.GetRecentCheckIns)
	}

	// 考勤管理路由
	attendance := v1.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	{
		attendance.GET("", handler.ListAttendance)
		attendance.PATCH("/:id/action", handler.AttendanceAction)
		attendance.DELETE("/:id", handler.DeleteAttendance)
	}

	// 员工目录路由
	employees := v1.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.POST("", handler.CreateEmployee)
		employees.GET("", handler.ListEmployees)
		employees.PATCH("/:id/trash", handler.TrashEmployee)
	}
}
