package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metchera-backend/internal/features/identity/generator"
	"metchera-backend/internal/features/identity/models"
	"metchera-backend/internal/features/identity/repository"
)

func openTestRepo(t *testing.T) repository.IdentityRepository {
	t.Helper()

	repo, closeStore, err := Open(filepath.Join(t.TempDir(), "identities.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeStore() })

	return repo
}

func mustGenerate(t *testing.T, docType models.DocumentType, autoDeleteMinutes int) *models.Identity {
	t.Helper()

	identity, err := generator.New().Generate(docType, autoDeleteMinutes)
	require.NoError(t, err)
	return identity
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	identity := mustGenerate(t, models.DocumentTypePassport, 0)
	id, err := repo.Create(ctx, identity)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, identity.FirstName, got.FirstName)
	assert.Equal(t, identity.LastName, got.LastName)
	assert.Equal(t, identity.Email, got.Email)
	assert.Equal(t, identity.TempEmail.Address, got.TempEmail.Address)
	assert.Equal(t, identity.Banking.AccountNumber, got.Banking.AccountNumber)
	assert.Equal(t, models.DocumentTypePassport, got.DocumentType)

	// Sparse documents survive the round trip: only the active entry exists.
	require.NotNil(t, got.Documents.Passport)
	assert.Nil(t, got.Documents.IDCard)
	assert.Nil(t, got.Documents.DriverLicense)
	assert.Equal(t, identity.Documents.Passport.Number, got.Documents.Passport.Number)
	assert.True(t, got.Documents.Passport.ExpiryDate.Equal(identity.Documents.Passport.ExpiryDate))

	// Absent platforms never reappear as keys.
	assert.Equal(t, len(identity.SocialMedia), len(got.SocialMedia))
	for platform, profile := range identity.SocialMedia {
		gotProfile, ok := got.SocialMedia[platform]
		require.True(t, ok, "platform %s lost in round trip", platform)
		require.NotNil(t, gotProfile)
		assert.Equal(t, profile.Username, gotProfile.Username)
		assert.True(t, gotProfile.JoinDate.Equal(profile.JoinDate))
	}

	// Timestamps round-trip to equivalent instants.
	assert.True(t, got.CreatedAt.Equal(identity.CreatedAt))
	assert.True(t, got.ExpiresAt.Equal(identity.ExpiresAt))
	assert.True(t, got.AutoDelete.DeleteAt.Equal(identity.AutoDelete.DeleteAt))
}

func TestCreditCardSparsity(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	identity := mustGenerate(t, "", 0)
	identity.Banking.CreditCard = nil

	id, err := repo.Create(ctx, identity)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Banking.CreditCard)
}

func TestGetMissing(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListRecentNewestFirst(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		identity := mustGenerate(t, "", 0)
		identity.CreatedAt = time.Now().Add(time.Duration(i) * time.Millisecond)
		id, err := repo.Create(ctx, identity)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	got, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Insertion order, newest inserted first.
	assert.Equal(t, ids[4], got[0].ID)
	assert.Equal(t, ids[3], got[1].ID)
	assert.Equal(t, ids[2], got[2].ID)

	all, err := repo.ListRecent(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestDeleteIdempotent(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, mustGenerate(t, "", 0))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	// Second delete of the same id is not an error.
	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateAutoDelete(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, mustGenerate(t, "", 0))
	require.NoError(t, err)

	before := time.Now()
	updated, err := repo.UpdateAutoDelete(ctx, id, true, 30)
	require.NoError(t, err)

	assert.True(t, updated.AutoDelete.Enabled)
	assert.Equal(t, 30, updated.AutoDelete.TimeoutMinutes)
	assert.WithinDuration(t, before.Add(30*time.Minute), updated.AutoDelete.DeleteAt, time.Second)

	// Only the auto-delete sub-record changed; the fixed expiry is untouched.
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.AutoDelete.DeleteAt.Equal(updated.AutoDelete.DeleteAt))
	assert.True(t, got.ExpiresAt.Equal(updated.ExpiresAt))
}

func TestUpdateAutoDeleteMissing(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.UpdateAutoDelete(context.Background(), "no-such-id", true, 30)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFindExpired(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	// Three overdue, two future, one overdue-but-disabled.
	var overdue []string
	for i := 0; i < 3; i++ {
		identity := mustGenerate(t, "", 5)
		identity.AutoDelete.DeleteAt = now.Add(-time.Minute)
		id, err := repo.Create(ctx, identity)
		require.NoError(t, err)
		overdue = append(overdue, id)
	}
	for i := 0; i < 2; i++ {
		_, err := repo.Create(ctx, mustGenerate(t, "", 60))
		require.NoError(t, err)
	}
	disabled := mustGenerate(t, "", 0)
	disabled.AutoDelete.DeleteAt = now.Add(-time.Minute)
	_, err := repo.Create(ctx, disabled)
	require.NoError(t, err)

	expired, err := repo.FindExpired(ctx, now)
	require.NoError(t, err)
	require.Len(t, expired, 3)

	found := map[string]bool{}
	for _, identity := range expired {
		found[identity.ID] = true
	}
	for _, id := range overdue {
		assert.True(t, found[id])
	}
}
