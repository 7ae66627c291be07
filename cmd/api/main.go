package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/worklane/hrm-backend-go/internal/config"
	appHTTP "github.com/worklane/hrm-backend-go/internal/handler/http"
	"github.com/worklane/hrm-backend-go/internal/pkg/cron"
	"github.com/worklane/hrm-backend-go/internal/pkg/database"
	"github.com/worklane/hrm-backend-go/internal/pkg/email"
	"github.com/worklane/hrm-backend-go/internal/pkg/jwt"
	"github.com/worklane/hrm-backend-go/internal/pkg/oauth"
	"github.com/worklane/hrm-backend-go/internal/pkg/sse"
	"github.com/worklane/hrm-backend-go/internal/pkg/storage"
	"github.com/worklane/hrm-backend-go/internal/repository/postgresql"
	announcementService "github.com/worklane/hrm-backend-go/internal/service/announcement"
	assetService "github.com/worklane/hrm-backend-go/internal/service/asset"
	attendanceService "github.com/worklane/hrm-backend-go/internal/service/attendance"
	authService "github.com/worklane/hrm-backend-go/internal/service/auth"
	dashboardService "github.com/worklane/hrm-backend-go/internal/service/dashboard"
	employeeService "github.com/worklane/hrm-backend-go/internal/service/employee"
	"github.com/worklane/hrm-backend-go/internal/service/file"
	helpdeskService "github.com/worklane/hrm-backend-go/internal/service/helpdesk"
	leaveService "github.com/worklane/hrm-backend-go/internal/service/leave"
	masterService "github.com/worklane/hrm-backend-go/internal/service/master"
	payrollService "github.com/worklane/hrm-backend-go/internal/service/payroll"
	performanceService "github.com/worklane/hrm-backend-go/internal/service/performance"
	reportService "github.com/worklane/hrm-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	location := cfg.Location()

	// Repositories
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	designationRepo := postgresql.NewDesignationRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	goalRepo := postgresql.NewGoalRepository(db)
	appraisalRepo := postgresql.NewAppraisalRepository(db)
	indicatorRepo := postgresql.NewIndicatorRepository(db)
	assetRepo := postgresql.NewAssetRepository(db)
	ticketRepo := postgresql.NewTicketRepository(db)
	complaintRepo := postgresql.NewComplaintRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	// Infrastructure
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}
	fileStorage, err := storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.Storage.PublicURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}
	hub := sse.NewHub()

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.ClientID != "" {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	// Services
	fileSvc := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService, emailService, cfg.App.FrontendURL+"/login")
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, cfg.Shift, location)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileSvc)
	masterSvc := masterService.NewMasterService(departmentRepo, designationRepo)
	leaveSvc := leaveService.NewLeaveService(leaveTypeRepo, leaveRequestRepo, employeeRepo, emailService)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo, hub)
	performanceSvc := performanceService.NewPerformanceService(goalRepo, appraisalRepo, indicatorRepo)
	assetSvc := assetService.NewAssetService(assetRepo, employeeRepo)
	helpdeskSvc := helpdeskService.NewHelpdeskService(ticketRepo, complaintRepo)
	dashboardSvc := dashboardService.NewDashboardService(
		dashboardRepo,
		attendanceRepo,
		leaveTypeRepo,
		leaveRequestRepo,
		announcementRepo,
		goalRepo,
		location,
	)
	reportSvc := reportService.NewReportService(reportRepo, location)

	// Handlers
	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Master:       appHTTP.NewMasterHandler(masterSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc, jwtService, hub),
		Performance:  appHTTP.NewPerformanceHandler(performanceSvc),
		Asset:        appHTTP.NewAssetHandler(assetSvc),
		Helpdesk:     appHTTP.NewHelpdeskHandler(helpdeskSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, handlers)

	// Nightly attendance housekeeping
	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, location).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Server shutdown error: ", err)
	}
}
