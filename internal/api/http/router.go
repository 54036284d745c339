package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zaer/hr-service/internal/api/http/handlers"
	"github.com/zaer/hr-service/internal/auth"
	"github.com/zaer/hr-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	APIPrefix      string
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Lookups        *handlers.LookupHandler
	Org            *handlers.OrgHandler
	Employees      *handlers.EmployeesHandler
	Dependents     *handlers.DependentsHandler
	Terminations   *handlers.TerminationsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	api := app.Group(cfg.APIPrefix)
	api.Post("/auth/login", cfg.Auth.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	protected.Post("/auth/password/change", cfg.Auth.ChangePassword)

	staff := auth.RequireStaff()
	superuser := auth.RequireSuperuser()

	for _, kind := range domain.LookupKinds {
		g := protected.Group("/" + kind.Path())
		g.Get("", cfg.Lookups.List(kind))
		g.Post("", superuser, cfg.Lookups.Create(kind))
		g.Get("/download/:format", cfg.Lookups.Download(kind))
		g.Get("/:uid", cfg.Lookups.Get(kind))
		g.Patch("/:uid", superuser, cfg.Lookups.Update(kind))
		g.Delete("/:uid", superuser, cfg.Lookups.Delete(kind))
	}

	for _, level := range domain.OrgLevels {
		g := protected.Group("/" + level.Path())
		g.Get("", cfg.Org.List(level))
		g.Post("", superuser, cfg.Org.Create(level))
		g.Get("/:uid", cfg.Org.Get(level))
		g.Patch("/:uid", superuser, cfg.Org.Update(level))
		g.Delete("/:uid", superuser, cfg.Org.Delete(level))
	}

	employees := protected.Group("/employees")
	employees.Get("", cfg.Employees.List)
	employees.Post("", staff, cfg.Employees.Create)
	employees.Get("/full", cfg.Employees.ListFull)
	employees.Get("/full/:uid", cfg.Employees.GetFull)
	employees.Get("/badge/:badge_number", cfg.Employees.GetByBadge)
	employees.Get("/download/:format", cfg.Employees.Download)
	employees.Get("/:uid", cfg.Employees.Get)
	employees.Patch("/:uid", staff, cfg.Employees.Update)
	employees.Delete("/:uid", staff, cfg.Employees.Delete)

	children := protected.Group("/employee/children")
	children.Get("", cfg.Dependents.ListChildren)
	children.Post("", staff, cfg.Dependents.CreateChild)
	children.Get("/employee-id/:uid", cfg.Dependents.ListChildrenByEmployee)
	children.Get("/child-id/:uid", cfg.Dependents.GetChild)
	children.Patch("/:uid", staff, cfg.Dependents.UpdateChild)
	children.Delete("/:uid", staff, cfg.Dependents.DeleteChild)

	addresses := protected.Group("/employee/addresses")
	addresses.Get("", cfg.Dependents.ListAddresses)
	addresses.Post("", staff, cfg.Dependents.CreateAddress)
	addresses.Get("/employee-id/:uid", cfg.Dependents.GetAddressByEmployee)
	addresses.Get("/address-id/:uid", cfg.Dependents.GetAddress)
	addresses.Get("/:uid", cfg.Dependents.GetAddress)
	addresses.Patch("/:uid", staff, cfg.Dependents.UpdateAddress)
	addresses.Delete("/:uid", staff, cfg.Dependents.DeleteAddress)

	contacts := protected.Group("/employee/contact-persons")
	contacts.Get("", cfg.Dependents.ListContactPersons)
	contacts.Post("", staff, cfg.Dependents.CreateContactPerson)
	contacts.Get("/employee-id/:uid", cfg.Dependents.GetContactPersonByEmployee)
	contacts.Get("/contact-id/:uid", cfg.Dependents.GetContactPerson)
	contacts.Patch("/:uid", staff, cfg.Dependents.UpdateContactPerson)
	contacts.Delete("/:uid", staff, cfg.Dependents.DeleteContactPerson)

	terminations := protected.Group("/terminations")
	terminations.Get("", cfg.Terminations.List)
	terminations.Post("", staff, cfg.Terminations.Create)
	terminations.Get("/employee-id/:uid", cfg.Terminations.ListByEmployee)
	terminations.Get("/:uid", cfg.Terminations.Get)
	terminations.Get("/:uid/severance-pay", cfg.Terminations.SeverancePay)
	terminations.Get("/:uid/severance-pay/pdf", cfg.Terminations.SeverancePayPDF)
	terminations.Patch("/:uid", staff, cfg.Terminations.Update)
	terminations.Delete("/:uid", staff, cfg.Terminations.Delete)
}
