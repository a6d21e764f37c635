package database_test

import (
	"testing"

	"scms/database"
	"scms/models"
	"scms/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestConnectSeedsDefaultAdmin(t *testing.T) {
	cfg := testutils.TestConfig(t)

	db, err := database.Connect(cfg)
	require.NoError(t, err)

	var admin models.Admin
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	cfg := testutils.TestConfig(t)

	db, err := database.Connect(cfg)
	require.NoError(t, err)

	// Startup seeding already ran once inside Connect; run it again
	require.NoError(t, database.SeedAdmin(db, "admin", "admin123"))
	require.NoError(t, database.SeedAdmin(db, "admin", "different-password"))

	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Where("username = ?", "admin").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The original password still holds; seeding never rotates credentials
	var admin models.Admin
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))
}
