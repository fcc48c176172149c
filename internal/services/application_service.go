package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/codecraftpakistan/codecraft-site/config"
	"github.com/codecraftpakistan/codecraft-site/internal/models"
	"github.com/codecraftpakistan/codecraft-site/pkg/emailrelay"
	"github.com/codecraftpakistan/codecraft-site/pkg/errors"
	"github.com/codecraftpakistan/codecraft-site/pkg/formtoken"
	"github.com/codecraftpakistan/codecraft-site/pkg/logger"
	"github.com/codecraftpakistan/codecraft-site/pkg/metrics"
	"github.com/codecraftpakistan/codecraft-site/pkg/tracing"
	"github.com/codecraftpakistan/codecraft-site/pkg/trigger"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CareersForm names the form whose tokens this service accepts
const CareersForm = "careers"

const (
	SuccessMessage = "Application submitted successfully! Please check your email for confirmation."
	FailurePrefix  = "Failed to submit application: "
)

// RelayClient builds and sends relay messages
type RelayClient interface {
	emailrelay.Sender
	NewMessage(templateID string, params map[string]string) *emailrelay.Message
}

// SubmissionGuard holds a key for as long as a notification call is outstanding
type SubmissionGuard interface {
	Acquire(key string) bool
	Release(key string)
}

// TaskDispatcher runs work detached from the request
type TaskDispatcher interface {
	Go(ctx context.Context, name string, fn trigger.Task)
}

// FormTokens issues and checks per-instance form tokens
type FormTokens interface {
	Issue(form string) (string, error)
	Validate(token string) (*formtoken.FormClaims, error)
}

// CaptchaVerifier checks an applicant's captcha token
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) error
}

// ApplicationService runs the job application workflow: one awaited
// notification to the company inbox, then a detached acknowledgment to the applicant.
type ApplicationService struct {
	relay    RelayClient
	guard    SubmissionGuard
	tasks    TaskDispatcher
	tokens   FormTokens
	captcha  CaptchaVerifier
	relayCfg config.EmailRelayConfig
	company  config.CompanyConfig
}

// NewApplicationService creates the application service. captcha may be nil to
// accept submissions without a captcha check.
func NewApplicationService(
	cfg *config.Config,
	relay RelayClient,
	guard SubmissionGuard,
	tasks TaskDispatcher,
	tokens FormTokens,
	captcha CaptchaVerifier,
) *ApplicationService {
	return &ApplicationService{
		relay:    relay,
		guard:    guard,
		tasks:    tasks,
		tokens:   tokens,
		captcha:  captcha,
		relayCfg: cfg.EmailRelay,
		company:  cfg.Company,
	}
}

// NewFormToken issues the token embedded in a freshly rendered form
func (s *ApplicationService) NewFormToken() string {
	token, err := s.tokens.Issue(CareersForm)
	if err != nil {
		logger.Error("Failed to issue form token", zap.Error(err))
		return ""
	}
	return token
}

// FormSchema describes the careers form for API clients
func (s *ApplicationService) FormSchema(siteKey string) *models.ApplicationFormSchema {
	return &models.ApplicationFormSchema{
		Roles:              models.JobRoles,
		CountryCodes:       models.CountryCodes,
		DefaultCountryCode: models.DefaultCountryCode,
		ResumeExtensions:   models.ResumeExtensions,
		FormToken:          s.NewFormToken(),
		RecaptchaSiteKey:   siteKey,
	}
}

// SubmitApplication sends the notification and, once it is accepted, launches
// the acknowledgment. A relay failure is reported in the response, not as an
// error, and the form is left untouched. On success the form is reset.
func (s *ApplicationService) SubmitApplication(ctx context.Context, form *models.ApplicationForm) (*models.SubmitApplicationResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "ApplicationService.SubmitApplication",
		attribute.String("application.role", form.Role),
	)
	defer span.End()

	if s.captcha != nil {
		if err := s.captcha.Verify(ctx, form.RecaptchaToken); err != nil {
			metrics.ApplicationSubmissions.WithLabelValues("captcha_failed").Inc()
			logger.Warn("ReCAPTCHA verification failed", zap.Error(err))
			return nil, errors.InvalidInputError("recaptcha", "Captcha verification failed")
		}
	}

	key := s.submissionKey(form)
	if !s.guard.Acquire(key) {
		metrics.ApplicationSubmissions.WithLabelValues("duplicate").Inc()
		return nil, errors.ConflictError("application is already being submitted")
	}

	notification := s.relay.NewMessage(s.relayCfg.NotificationTemplate, NotificationParams(form, s.company))
	err := s.relay.Send(ctx, KindNotification, notification)
	s.guard.Release(key)

	if err != nil {
		tracing.RecordError(span, err)
		metrics.ApplicationSubmissions.WithLabelValues("relay_failed").Inc()
		logger.Error("Failed to send application notification",
			zap.String("role", form.Role),
			zap.Error(err))
		return &models.SubmitApplicationResponse{
			Success: false,
			Error:   FailurePrefix + relayErrorText(err),
		}, nil
	}

	// The closure must not see the reset below
	applicant := *form
	acknowledgment := s.relay.NewMessage(s.relayCfg.AcknowledgmentTemplate, AcknowledgmentParams(&applicant, s.company))
	s.tasks.Go(ctx, KindAcknowledgment, func(taskCtx context.Context) error {
		return s.relay.Send(taskCtx, KindAcknowledgment, acknowledgment)
	})

	metrics.ApplicationSubmissions.WithLabelValues("success").Inc()
	logger.Info("Application submitted", zap.String("role", form.Role))

	form.Reset()
	return &models.SubmitApplicationResponse{
		Success: true,
		Message: SuccessMessage,
	}, nil
}

// submissionKey identifies the form instance being submitted. A valid form
// token names the instance; otherwise the applicant's email and role do.
func (s *ApplicationService) submissionKey(form *models.ApplicationForm) string {
	if form.FormToken != "" {
		claims, err := s.tokens.Validate(form.FormToken)
		if err == nil && claims.Form == CareersForm && claims.InstanceID() != "" {
			return "form:" + claims.InstanceID()
		}
		logger.Debug("Ignoring unusable form token", zap.Error(err))
	}

	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(form.Email)) + "\x00" + form.Role))
	return "content:" + hex.EncodeToString(sum[:])
}

// relayErrorText is the most specific text the relay gave, or the generic fallback
func relayErrorText(err error) string {
	var relayErr *emailrelay.RelayError
	if errors.As(err, &relayErr) {
		return relayErr.Error()
	}
	return emailrelay.FallbackErrorText
}
