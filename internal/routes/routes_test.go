package routes

import (
	"testing"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/managedfile"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{}

	files := managedfile.NewManager(storage.NewDisabledStorage())
	sc := services.NewServiceContainer(nil, files, config.AppConfig)

	router := gin.New()
	RegisterRoutes(router, handlers.NewAppHandlers(sc))
	return router
}

func TestRouteTable(t *testing.T) {
	router := newTestRouter()

	registered := map[string]bool{}
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/forgotpassword",
		"PUT /api/auth/resetpassword/:resettoken",
		"GET /api/auth/profile",
		"GET /api/projects",
		"POST /api/projects",
		"GET /api/settings",
		"PUT /api/settings",
		"POST /api/settings/profile-photo",
		"GET /api/education",
		"GET /api/achievements",
		"POST /api/achievements",
		"PUT /api/achievements/:id",
		"DELETE /api/achievements/:id",
		"GET /api/skillcategories",
		"POST /api/skillcategories/:id/skills",
		"DELETE /api/skillcategories/:id/skills/:skill",
		"GET /api/sociallinks",
		"POST /api/contact",
		"GET /api/admin/summary",
	}
	for _, want := range expected {
		assert.True(t, registered[want], "missing route %s", want)
	}
}
