package handler

import (
	"time"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

// Template names registered by the web renderer.
const (
	tmplHome        = "home.html"
	tmplPrivacy     = "privacy.html"
	tmplLogin       = "login.html"
	tmplAdminLogin  = "admin_login.html"
	tmplAdminIndex  = "admin_index.html"
	tmplDashboard   = "admin_dashboard.html"
	tmplUserManager = "admin_users.html"
	tmplReports     = "admin_reports.html"
	tmplProfile     = "admin_profile.html"

	// TmplError is also rendered by the central error handler.
	TmplError = "error.html"
)

// Page carries the fields shared by every layout.
type Page struct {
	Title    string
	Username string
	Role     string
}

func newPage(title string, id *domain.Identity) Page {
	p := Page{Title: title}
	if id != nil {
		p.Username = id.Username
		p.Role = id.DisplayRole()
	}
	return p
}

type homeView struct {
	Page
	Catalog *ports.Catalog
}

// ErrorView backs the error page.
type ErrorView struct {
	Page
	Status    int
	Message   string
	RequestID string
}

// ShowRequestID mirrors the error page's conditional request id block.
func (v ErrorView) ShowRequestID() bool {
	return v.RequestID != ""
}

type loginView struct {
	Page
	Form      string
	Input     string
	Token     string
	ExpiresAt time.Time
	Error     string
	Success   string
}

type adminIndexView struct {
	Page
	Message string
	Catalog *ports.Catalog
}

type dashboardView struct {
	Page
	Summary *ports.CatalogSummary
}

type userManagerView struct {
	Page
	Message string
	Users   []domain.User
}

type reportsView struct {
	Page
	Message string
	Stats   domain.UserStats
}

type profileView struct {
	Page
	Message string
	User    *domain.User
}
