package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metchera-backend/internal/features/identity/generator"
	"metchera-backend/internal/features/identity/models"
)

// stubService records the arguments the handler passed through and answers
// with freshly generated records.
type stubService struct {
	lastDocType models.DocumentType
	lastMinutes int
}

func (s *stubService) CreateIdentity(ctx context.Context, docType models.DocumentType, autoDeleteMinutes int) (*models.Identity, error) {
	s.lastDocType = docType
	s.lastMinutes = autoDeleteMinutes
	return generator.NewSeeded(1).Generate(docType, autoDeleteMinutes)
}

func (s *stubService) GetIdentity(ctx context.Context, id string) (*models.Identity, error) {
	return generator.NewSeeded(1).Generate("", 0)
}

func (s *stubService) ListRecent(ctx context.Context, count int) ([]*models.Identity, error) {
	return []*models.Identity{}, nil
}

func (s *stubService) DeleteIdentity(ctx context.Context, id string) error {
	return nil
}

func (s *stubService) UpdateAutoDelete(ctx context.Context, id string, enabled bool, timeoutMinutes int) (*models.Identity, error) {
	return generator.NewSeeded(1).Generate("", timeoutMinutes)
}

func (s *stubService) DeleteExpired(ctx context.Context) (int, error) {
	return 0, nil
}

func newTestRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewIdentityHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestCreateIdentityEmptyBody(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/identities", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.DocumentType(""), svc.lastDocType)
	assert.Equal(t, 0, svc.lastMinutes)
}

func TestCreateIdentityChunkedBody(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	// io.MultiReader hides the length, so the request carries no
	// Content-Length, like a chunked client upload.
	body := io.MultiReader(strings.NewReader(`{"document_type":"passport","auto_delete_minutes":15}`))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/identities", body)
	require.Equal(t, int64(-1), req.ContentLength)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.DocumentTypePassport, svc.lastDocType)
	assert.Equal(t, 15, svc.lastMinutes)
}

func TestCreateIdentityMalformedBody(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/identities", strings.NewReader(`{"document_type":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
