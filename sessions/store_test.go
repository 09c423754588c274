package sessions_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blueline-rp/mdt-bot/models"
	"github.com/blueline-rp/mdt-bot/sessions"
)

func openDraft(owner, guild string, ttl time.Duration) *models.Draft {
	return &models.Draft{
		OwnerID:   owner,
		GuildID:   guild,
		Type:      models.ArrestLog,
		Status:    models.StatusOpen,
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestStore_PutGetDelete(t *testing.T) {
	store := sessions.New()
	key := sessions.Key{OwnerID: "100", GuildID: "200"}

	got, expired := store.Get(key)
	assert.Nil(t, got)
	assert.False(t, expired)

	draft := openDraft("100", "200", time.Minute)
	store.Put(key, draft)

	got, expired = store.Get(key)
	assert.Same(t, draft, got)
	assert.False(t, expired)
	assert.Equal(t, 1, store.Len())

	store.Delete(key)
	got, _ = store.Get(key)
	assert.Nil(t, got)
	assert.Equal(t, 0, store.Len())
}

func TestStore_GetPurgesExpired(t *testing.T) {
	store := sessions.New()
	key := sessions.Key{OwnerID: "100", GuildID: "200"}

	draft := openDraft("100", "200", -time.Second)
	draft.Fields.Officer = "Officer Doe"
	store.Put(key, draft)

	got, expired := store.Get(key)
	assert.Nil(t, got)
	assert.True(t, expired)
	assert.Equal(t, models.StatusExpired, draft.Status)
	assert.Equal(t, 0, store.Len(), "expired entry should be purged")

	// A second access reports plain absence, not expiry.
	got, expired = store.Get(key)
	assert.Nil(t, got)
	assert.False(t, expired)
}

func TestStore_KeysAreIndependent(t *testing.T) {
	store := sessions.New()
	a := sessions.Key{OwnerID: "100", GuildID: "200"}
	b := sessions.Key{OwnerID: "100", GuildID: "201"}
	c := sessions.Key{OwnerID: "101", GuildID: "200"}

	store.Put(a, openDraft("100", "200", time.Minute))
	store.Put(b, openDraft("100", "201", time.Minute))
	store.Put(c, openDraft("101", "200", time.Minute))
	assert.Equal(t, 3, store.Len())

	store.Delete(b)
	got, _ := store.Get(a)
	assert.NotNil(t, got)
	got, _ = store.Get(c)
	assert.NotNil(t, got)
}

func TestStore_PutReplacesStaleDraft(t *testing.T) {
	store := sessions.New()
	key := sessions.Key{OwnerID: "100", GuildID: "200"}

	first := openDraft("100", "200", time.Minute)
	second := openDraft("100", "200", time.Minute)
	store.Put(key, first)
	store.Put(key, second)

	got, _ := store.Get(key)
	assert.Same(t, second, got)
	assert.Equal(t, 1, store.Len())
}
