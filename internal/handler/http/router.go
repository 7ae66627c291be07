package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worklane/hrm-backend-go/internal/handler/http/middleware"
	"github.com/worklane/hrm-backend-go/internal/pkg/jwt"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth         AuthHandler
	Attendance   AttendanceHandler
	Employee     EmployeeHandler
	Master       MasterHandler
	Leave        LeaveHandler
	Payroll      PayrollHandler
	Announcement AnnouncementHandler
	Performance  PerformanceHandler
	Asset        AssetHandler
	Helpdesk     HelpdeskHandler
	Dashboard    DashboardHandler
	Report       ReportHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worklane-hrm"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// SSE stream authenticates with a short-lived token in the query
		// string, so it sits outside the Verifier chain.
		r.Get("/announcements/stream", h.Announcement.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/me", h.Attendance.GetMyAttendance)
				r.Get("/summary", h.Attendance.GetSummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/", h.Attendance.List)
					r.Put("/{id}", h.Attendance.Adjust)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.GetMyProfile)
				r.Put("/me", h.Employee.UpdateMyProfile)
				r.Post("/me/avatar", h.Employee.UploadAvatar)

				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOnly)
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
					r.Get("/{id}/appraisals", h.Performance.ListEmployeeAppraisals)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
				})

				r.With(middleware.AdminOnly).Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/departments", h.Master.ListDepartments)
				r.Get("/designations", h.Master.ListDesignations)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Post("/departments", h.Master.CreateDepartment)
					r.Delete("/departments/{id}", h.Master.DeleteDepartment)
					r.Post("/designations", h.Master.CreateDesignation)
					r.Delete("/designations/{id}", h.Master.DeleteDesignation)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/types", h.Leave.ListTypes)
				r.Get("/balance", h.Leave.GetMyBalance)

				r.Route("/requests", func(r chi.Router) {
					r.Post("/", h.Leave.Create)
					r.Get("/", h.Leave.List)
					r.Get("/{id}", h.Leave.Get)
					r.Post("/{id}/cancel", h.Leave.Cancel)

					r.Group(func(r chi.Router) {
						r.Use(middleware.ManagerOnly)
						r.Post("/{id}/approve", h.Leave.Approve)
						r.Post("/{id}/reject", h.Leave.Reject)
					})
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/payslips/me", h.Payroll.GetMyPayslips)
				r.Get("/payslips/{id}", h.Payroll.GetPayslip)
				r.Get("/payslips/{id}/breakdown", h.Payroll.GetSalaryBreakdown)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Post("/generate", h.Payroll.Generate)
					r.Get("/payslips", h.Payroll.List)
					r.Post("/payslips/{id}/approve", h.Payroll.Approve)
				})
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", h.Announcement.List)
				r.Get("/{id}", h.Announcement.Get)
				r.Post("/{id}/read", h.Announcement.MarkRead)
				r.Post("/sse/token", h.Announcement.GetSSEToken)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Post("/", h.Announcement.Create)
					r.Delete("/{id}", h.Announcement.Delete)
				})
			})

			r.Route("/performance", func(r chi.Router) {
				r.Route("/goals", func(r chi.Router) {
					r.Get("/me", h.Performance.GetMyGoals)
					r.Put("/{id}/progress", h.Performance.UpdateGoalProgress)

					r.Group(func(r chi.Router) {
						r.Use(middleware.ManagerOnly)
						r.Post("/", h.Performance.CreateGoal)
						r.Get("/", h.Performance.ListGoals)
						r.Delete("/{id}", h.Performance.DeleteGoal)
					})
				})

				r.Route("/appraisals", func(r chi.Router) {
					r.Get("/me", h.Performance.GetMyAppraisals)
					r.Get("/{id}", h.Performance.GetAppraisal)
					r.With(middleware.ManagerOnly).Post("/", h.Performance.CreateAppraisal)
				})

				r.Route("/indicators", func(r chi.Router) {
					r.Get("/", h.Performance.ListIndicators)
					r.With(middleware.HROnly).Post("/", h.Performance.CreateIndicator)
				})
			})

			r.Route("/assets", func(r chi.Router) {
				r.Get("/me", h.Asset.GetMyAssets)
				r.Get("/{id}", h.Asset.Get)
				r.Post("/{id}/return-request", h.Asset.RequestReturn)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/", h.Asset.List)
					r.Post("/", h.Asset.Create)
					r.Get("/statistics", h.Asset.GetStatistics)
					r.Post("/{id}/assign", h.Asset.Assign)
					r.Post("/{id}/confirm-return", h.Asset.ConfirmReturn)
					r.Post("/{id}/retire", h.Asset.Retire)
				})
			})

			r.Route("/helpdesk", func(r chi.Router) {
				r.Route("/tickets", func(r chi.Router) {
					r.Post("/", h.Helpdesk.CreateTicket)
					r.Get("/me", h.Helpdesk.GetMyTickets)
					r.Get("/{id}", h.Helpdesk.GetTicket)
					r.Post("/{id}/comments", h.Helpdesk.AddComment)
					r.Get("/{id}/comments", h.Helpdesk.ListComments)

					r.Group(func(r chi.Router) {
						r.Use(middleware.ManagerOnly)
						r.Get("/", h.Helpdesk.ListTickets)
						r.Patch("/{id}/status", h.Helpdesk.UpdateTicketStatus)
					})
				})

				r.Route("/complaints", func(r chi.Router) {
					r.Post("/", h.Helpdesk.CreateComplaint)

					r.Group(func(r chi.Router) {
						r.Use(middleware.HROnly)
						r.Get("/", h.Helpdesk.ListComplaints)
						r.Post("/{id}/resolve", h.Helpdesk.ResolveComplaint)
					})
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/me", h.Dashboard.GetMyDashboard)
				r.With(middleware.HROnly).Get("/admin", h.Dashboard.GetAdminDashboard)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.HROnly)
				r.Get("/attendance", h.Report.AttendanceReport)
				r.Get("/payroll", h.Report.PayrollReport)
				r.Get("/leave", h.Report.LeaveReport)
			})
		})
	})
	return r
}
