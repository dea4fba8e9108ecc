package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/rate-my-teacher/internal/middleware"
	"github.com/noah-isme/rate-my-teacher/internal/service"
)

// Handlers groups every route handler plus what the route guards need.
type Handlers struct {
	Auth      *AuthHandler
	AdminAuth *AdminAuthHandler
	Teachers  *TeacherHandler
	Reviews   *ReviewHandler
	Tickets   *TicketHandler
	Admin     *AdminHandler
	Metrics   *MetricsHandler

	Users       *service.AuthService
	Admins      *service.AdminAuthService
	UserCookie  string
	AdminCookie string
}

// RegisterRoutes mounts the public site, the signed-in pages and the admin
// panel on r.
func RegisterRoutes(r gin.IRouter, h Handlers) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	r.POST("/login", h.Auth.SignIn)
	r.POST("/signup", h.Auth.SignUp)
	r.POST("/logout", h.Auth.SignOut)

	r.GET("/teachers", h.Teachers.Browse)
	r.GET("/teachers/:id", h.Teachers.Detail)

	site := r.Group("/")
	site.Use(middleware.Session(h.Users, h.UserCookie))
	{
		// Mutations check the gate themselves so they can redirect with
		// their own error paths.
		site.POST("/reviews", h.Reviews.Create)
		site.POST("/reviews/vote", h.Reviews.Vote)
		site.POST("/me/ratings/update", h.Reviews.UpdateMine)
		site.POST("/me/ratings/delete", h.Reviews.DeleteMine)
		site.GET("/contact", h.Tickets.Categories)
		site.POST("/contact", h.Tickets.Create)

		gated := site.Group("/")
		gated.Use(middleware.RequireUser(h.Users.Gate()))
		gated.GET("/teachers/:id/rate", h.Teachers.RateForm)
		gated.GET("/me/ratings", h.Reviews.ListMine)
		gated.GET("/me/ratings/:id/edit", h.Reviews.EditMine)
	}

	r.POST("/admin/login", h.AdminAuth.Login)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin(h.Admins, h.AdminCookie))
	{
		admin.POST("/logout", h.AdminAuth.Logout)

		admin.GET("/teachers", h.Admin.ListTeachers)
		admin.GET("/teachers/:id/edit", h.Admin.EditTeacher)
		admin.POST("/teachers", h.Admin.CreateTeacher)
		admin.POST("/teachers/update", h.Admin.UpdateTeacher)
		admin.POST("/teachers/delete", h.Admin.DeleteTeacher)

		admin.GET("/reviews", h.Admin.ListReviews)
		admin.GET("/reviews/:id/edit", h.Admin.EditReview)
		admin.POST("/reviews/update", h.Admin.UpdateReview)
		admin.POST("/reviews/delete", h.Admin.DeleteReview)

		admin.GET("/tickets", h.Admin.ListTickets)
		admin.GET("/tickets/export", h.Admin.ExportTickets)
		admin.GET("/tickets/:id", h.Admin.GetTicket)
		admin.POST("/tickets/update", h.Admin.UpdateTicket)
	}
}
