package handlers

import (
	"context"
	"testing"

	"github.com/codecraftpakistan/codecraft-site/internal/models"
	"github.com/codecraftpakistan/codecraft-site/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
}

// MockApplicationService is a mock implementation of ApplicationServiceInterface
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) SubmitApplication(ctx context.Context, form *models.ApplicationForm) (*models.SubmitApplicationResponse, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmitApplicationResponse), args.Error(1)
}

func (m *MockApplicationService) NewFormToken() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockApplicationService) FormSchema(siteKey string) *models.ApplicationFormSchema {
	args := m.Called(siteKey)
	return args.Get(0).(*models.ApplicationFormSchema)
}

func testSite() web.Site {
	return web.NewSite("Code Craft Pakistan", "codecraftpakistan@gmail.com")
}

func newHTMLRouter(t *testing.T) *gin.Engine {
	t.Helper()
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	router := gin.New()
	router.HTMLRender = renderer
	return router
}
