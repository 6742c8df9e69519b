package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvailland/studio-booking/api/http/handlers"
	"github.com/mvailland/studio-booking/pkg/security/token"
)

// Register wires all HTTP routes onto the given Fiber app. The principal
// resolver is installed app-wide; requireAuth guards the protected groups.
func Register(
	app *fiber.App,
	resolver fiber.Handler,
	auth *handlers.AuthHandler,
	sessions *handlers.SessionHandler,
	teachers *handlers.TeacherHandler,
	users *handlers.UserHandler,
	health *handlers.HealthHandler,
) {
	app.Use(resolver)

	api := app.Group("/api")

	// Probes for monitoring; unauthenticated
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	a := api.Group("/auth")
	a.Post("/login", auth.Login)
	a.Post("/register", auth.Register)

	s := api.Group("/session", token.RequireAuth)
	s.Get("/", sessions.FindAll)
	s.Get("/:id", sessions.FindByID)
	s.Post("/", sessions.Create)
	s.Put("/:id", sessions.Update)
	s.Delete("/:id", sessions.Delete)
	s.Post("/:id/participate/:userId", sessions.Participate)
	s.Delete("/:id/participate/:userId", sessions.NoLongerParticipate)

	t := api.Group("/teacher", token.RequireAuth)
	t.Get("/", teachers.FindAll)
	t.Get("/:id", teachers.FindByID)

	u := api.Group("/user", token.RequireAuth)
	u.Get("/:id", users.FindByID)
	u.Delete("/:id", users.Delete)
}
