package services

import (
	"context"

	"github.com/codecraftpakistan/codecraft-site/internal/models"
)

// ApplicationServiceInterface defines the interface for job application operations
type ApplicationServiceInterface interface {
	SubmitApplication(ctx context.Context, form *models.ApplicationForm) (*models.SubmitApplicationResponse, error)
	NewFormToken() string
	FormSchema(siteKey string) *models.ApplicationFormSchema
}

// Ensure services implement their interfaces
var _ ApplicationServiceInterface = (*ApplicationService)(nil)
