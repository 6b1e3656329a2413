package service

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"metchera-backend/internal/common/errors"
	"metchera-backend/internal/common/logger"
	"metchera-backend/internal/features/identity/generator"
	"metchera-backend/internal/features/identity/models"
	"metchera-backend/internal/features/identity/repository"
)

const maxListCount = 100

type identityService struct {
	repo repository.IdentityRepository

	// The generator is not safe for concurrent use; creates serialize on it.
	genMu sync.Mutex
	gen   *generator.Generator
}

// NewIdentityService wires the generator to whichever repository adapter was
// selected at startup.
func NewIdentityService(repo repository.IdentityRepository) IdentityService {
	return &identityService{
		repo: repo,
		gen:  generator.New(),
	}
}

func (s *identityService) CreateIdentity(ctx context.Context, docType models.DocumentType, autoDeleteMinutes int) (*models.Identity, error) {
	s.genMu.Lock()
	identity, err := s.gen.Generate(docType, autoDeleteMinutes)
	s.genMu.Unlock()
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, identity)
	if err != nil {
		return nil, errors.NewStorageError("create", err)
	}
	identity.ID = id

	logger.Info().
		Str("identity_id", id).
		Str("document_type", string(identity.DocumentType)).
		Bool("auto_delete", identity.AutoDelete.Enabled).
		Msg("Identity created")

	return identity, nil
}

func (s *identityService) GetIdentity(ctx context.Context, id string) (*models.Identity, error) {
	if id == "" {
		return nil, errors.NewValidationError("id", "must not be empty")
	}

	identity, err := s.repo.GetByID(ctx, id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NewIdentityNotFoundError(id)
	}
	if err != nil {
		return nil, errors.NewStorageError("get", err)
	}

	return identity, nil
}

func (s *identityService) ListRecent(ctx context.Context, count int) ([]*models.Identity, error) {
	if count <= 0 {
		count = 10
	}
	if count > maxListCount {
		count = maxListCount
	}

	identities, err := s.repo.ListRecent(ctx, count)
	if err != nil {
		return nil, errors.NewStorageError("list", err)
	}

	return identities, nil
}

func (s *identityService) DeleteIdentity(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("id", "must not be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewStorageError("delete", err)
	}

	logger.Info().Str("identity_id", id).Msg("Identity deleted")
	return nil
}

func (s *identityService) UpdateAutoDelete(ctx context.Context, id string, enabled bool, timeoutMinutes int) (*models.Identity, error) {
	if id == "" {
		return nil, errors.NewValidationError("id", "must not be empty")
	}
	if timeoutMinutes <= 0 {
		return nil, errors.NewValidationError("timeout_minutes", "must be positive")
	}

	identity, err := s.repo.UpdateAutoDelete(ctx, id, enabled, timeoutMinutes)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NewIdentityNotFoundError(id)
	}
	if err != nil {
		return nil, errors.NewStorageError("update auto-delete", err)
	}

	logger.Info().
		Str("identity_id", id).
		Bool("enabled", enabled).
		Int("timeout_minutes", timeoutMinutes).
		Time("delete_at", identity.AutoDelete.DeleteAt).
		Msg("Auto-delete settings updated")

	return identity, nil
}

func (s *identityService) DeleteExpired(ctx context.Context) (int, error) {
	expired, err := s.repo.FindExpired(ctx, time.Now())
	if err != nil {
		return 0, errors.NewStorageError("find expired", err)
	}

	deleted := 0
	for _, identity := range expired {
		// Per-record isolation: one bad delete never blocks the rest.
		if err := s.repo.Delete(ctx, identity.ID); err != nil {
			logger.Error().
				Str("identity_id", identity.ID).
				Err(err).
				Msg("Failed to delete expired identity")
			continue
		}
		deleted++
	}

	if deleted > 0 {
		logger.Info().Int("count", deleted).Msg("Auto-deleted expired identities")
	}

	return deleted, nil
}
