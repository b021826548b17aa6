package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/safestay/safestay-backend/internal/models"
)

func openTestDB(t *testing.T) (*DatabaseStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UssdSession{}))
	return NewDatabaseStore(db), db
}

func TestDatabaseSessionRoundTrip(t *testing.T) {
	store, _ := openTestDB(t)

	session := &models.UssdSession{
		SessionID:   "sess-1",
		PhoneNumber: "254712345678",
		CurrentStep: "enter_amount",
		Data: models.SessionData{
			PaymentStep:    "enter_amount",
			SelectedBillID: 7,
			PendingBillIDs: []uint{7, 9},
		},
		IsActive: true,
	}
	require.NoError(t, store.SaveSession(session))

	loaded, err := store.GetSession("sess-1")
	require.NoError(t, err)
	require.Equal(t, "enter_amount", loaded.CurrentStep)
	require.Equal(t, uint(7), loaded.Data.SelectedBillID)
	require.Equal(t, []uint{7, 9}, loaded.Data.PendingBillIDs)
	require.False(t, loaded.ExpiresAt.IsZero())
}

func TestDatabaseExpiredSessionReadsAsAbsentAndIsReplaceable(t *testing.T) {
	store, db := openTestDB(t)

	require.NoError(t, store.SaveSession(&models.UssdSession{
		SessionID:   "sess-1",
		PhoneNumber: "254712345678",
		CurrentStep: "enter_amount",
		IsActive:    true,
	}))

	err := db.Model(&models.UssdSession{}).
		Where("session_id = ?", "sess-1").
		Update("expires_at", time.Now().Add(-time.Minute)).Error
	require.NoError(t, err)

	_, err = store.GetSession("sess-1")
	require.Error(t, err)

	// A fresh session under the same gateway session ID must insert
	// cleanly; the session_id column carries a unique index.
	require.NoError(t, store.SaveSession(&models.UssdSession{
		SessionID:   "sess-1",
		PhoneNumber: "254712345678",
		CurrentStep: "main_menu",
		IsActive:    true,
	}))

	loaded, err := store.GetSession("sess-1")
	require.NoError(t, err)
	require.Equal(t, "main_menu", loaded.CurrentStep)

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.UssdSession{}).
		Where("session_id = ?", "sess-1").Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestDatabaseDeleteExpiredSessions(t *testing.T) {
	store, db := openTestDB(t)

	require.NoError(t, store.SaveSession(&models.UssdSession{SessionID: "live"}))
	require.NoError(t, store.SaveSession(&models.UssdSession{SessionID: "stale"}))

	err := db.Model(&models.UssdSession{}).
		Where("session_id = ?", "stale").
		Update("expires_at", time.Now().Add(-time.Hour)).Error
	require.NoError(t, err)

	require.NoError(t, store.DeleteExpiredSessions())

	var count int64
	require.NoError(t, db.Unscoped().Model(&models.UssdSession{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	_, err = store.GetSession("live")
	require.NoError(t, err)
}
