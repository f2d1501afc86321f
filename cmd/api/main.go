package main

import (
	"fmt"
	"net/http"

	"github.com/kerjahub/attendance-backend-go/internal/config"
	appHTTP "github.com/kerjahub/attendance-backend-go/internal/handler/http"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/clock"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/database"
	"github.com/kerjahub/attendance-backend-go/internal/pkg/jwt"
	"github.com/kerjahub/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kerjahub/attendance-backend-go/internal/service/attendance"
	authService "github.com/kerjahub/attendance-backend-go/internal/service/auth"
	gateService "github.com/kerjahub/attendance-backend-go/internal/service/gate"
	reportService "github.com/kerjahub/attendance-backend-go/internal/service/report"
	siteService "github.com/kerjahub/attendance-backend-go/internal/service/site"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	clk, err := clock.NewSystemClock(cfg.App.Timezone)
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	editRequestRepo := postgresql.NewEditRequestRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	enrollmentRepo := postgresql.NewEnrollmentRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, shiftRepo, leaveRepo, editRequestRepo, clk)
	gateSvc := gateService.NewGateService(enrollmentRepo, siteRepo, attendanceSvc, cfg.Face.Threshold)
	siteSvc := siteService.NewSiteService(siteRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, clk)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(gateSvc, attendanceSvc)
	adminHandler := appHTTP.NewAdminHandler(attendanceSvc, siteSvc, reportSvc)

	router := appHTTP.NewRouter(jwtService, authHandler, attendanceHandler, adminHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
