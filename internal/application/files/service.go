// Package files issues short-lived signed URLs for registered stored objects.
package files

import (
	"context"
	"fmt"
	"time"

	"github.com/shopadmin/backend/internal/application/staff"
	"github.com/shopadmin/backend/internal/domain/document"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// SignedURLIssuer turns a storage key into a time-limited URL. It does not
// check that the object exists.
type SignedURLIssuer interface {
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error)
}

// SignedURL is an issued URL and the moment it stops working
type SignedURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service authorizes file access and issues signed URLs
type Service struct {
	issuer    SignedURLIssuer
	documents document.Repository
	employees staff.EmployeeLookup
	ttl       time.Duration
}

// NewService creates a files Service. ttl <= 0 uses the issuer's default.
func NewService(issuer SignedURLIssuer, documents document.Repository, employees staff.EmployeeLookup, ttl time.Duration) *Service {
	return &Service{issuer: issuer, documents: documents, employees: employees, ttl: ttl}
}

// Issue validates key, checks the session may read the registered document
// and returns a freshly signed URL. Nothing is cached: every call signs anew.
func (s *Service) Issue(ctx context.Context, session *auth.Session, key string) (*SignedURL, error) {
	if err := document.ValidateKey(key); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "files", "issue",
		telemetry.SpanAttrStorageKey, key,
		telemetry.SpanAttrActorID, session.UserID,
	)
	defer span.End()

	doc, err := s.documents.FindByKey(ctx, key)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrCategory, string(doc.Category))

	if err := s.authorize(ctx, session, doc); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	url, expiresAt, err := s.issuer.SignedURL(ctx, key, s.ttl)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, fmt.Errorf("sign url: %w", err)
	}

	logger.L(ctx).Debug("Signed URL issued",
		zap.String("storage_key", key),
		zap.Time("expires_at", expiresAt),
	)
	return &SignedURL{URL: url, ExpiresAt: expiresAt}, nil
}

// authorize applies the per-category read rules. Payslips and receipts are
// also readable by the employee who owns them.
func (s *Service) authorize(ctx context.Context, session *auth.Session, doc *document.Document) error {
	switch doc.Category {
	case document.CategoryPayslip:
		return s.allowAllOrOwn(ctx, session, doc, auth.CapPayrollRead, auth.CapPayrollReadOwn)
	case document.CategoryReceipt:
		return s.allowAllOrOwn(ctx, session, doc, auth.CapExpensesRead, auth.CapExpensesReadOwn)
	case document.CategoryStatement:
		return requireCapability(session, auth.CapInvestmentsRead)
	case document.CategoryProductImage:
		return requireCapability(session, auth.CapProductsRead)
	case document.CategoryGeneral:
		return requireCapability(session, auth.CapFilesRead)
	default:
		return shared.ErrForbidden
	}
}

func (s *Service) allowAllOrOwn(ctx context.Context, session *auth.Session, doc *document.Document, all, own auth.Capability) error {
	if session.Can(all) {
		return nil
	}
	if !session.Can(own) || doc.OwnerEmployeeID == nil {
		return shared.ErrForbidden
	}
	self, ok, err := staff.SelfEmployeeID(ctx, s.employees, session)
	if err != nil {
		return err
	}
	if !ok || !doc.IsOwnedBy(self) {
		return shared.ErrForbidden
	}
	return nil
}

func requireCapability(session *auth.Session, c auth.Capability) error {
	if session.Can(c) {
		return nil
	}
	return shared.ErrForbidden
}
