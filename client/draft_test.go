//go:build unit

package client_test

import (
	"testing"

	"github.com/openairphotobooth/booking-api/client"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardDraftRoundTrip(t *testing.T) {
	store := client.NewMemoryDraftStore()
	draft := client.WizardDraft{
		Step:       3,
		Date:       "2026-06-20",
		TimeSlotID: uuid.New(),
		Email:      "customer@example.com",
		FirstName:  "Jamie",
		LastName:   "Rivera",
		Phone:      "5551234567",
		Location:   "Central Park",
	}

	require.NoError(t, client.SaveDraft(store, "session-1", draft))

	loaded, err := client.LoadDraft(store, "session-1")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(draft, loaded))
}

func TestWizardDraftOverwrite(t *testing.T) {
	store := client.NewMemoryDraftStore()

	require.NoError(t, client.SaveDraft(store, "session-1", client.WizardDraft{Step: 1, Date: "2026-06-20"}))
	require.NoError(t, client.SaveDraft(store, "session-1", client.WizardDraft{Step: 2, Date: "2026-06-21"}))

	loaded, err := client.LoadDraft(store, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Step)
	assert.Equal(t, "2026-06-21", loaded.Date)
}

func TestWizardDraftMissing(t *testing.T) {
	store := client.NewMemoryDraftStore()

	_, err := client.LoadDraft(store, "unknown")
	require.ErrorIs(t, err, client.ErrDraftNotFound)
}

func TestClearDraft(t *testing.T) {
	store := client.NewMemoryDraftStore()
	require.NoError(t, client.SaveDraft(store, "session-1", client.WizardDraft{Step: 1}))

	require.NoError(t, client.ClearDraft(store, "session-1"))

	_, err := client.LoadDraft(store, "session-1")
	require.ErrorIs(t, err, client.ErrDraftNotFound)
}

func TestLoadDraftCorruptPayload(t *testing.T) {
	store := client.NewMemoryDraftStore()
	require.NoError(t, store.Set("session-1", []byte("not json")))

	_, err := client.LoadDraft(store, "session-1")
	require.Error(t, err)
}
