package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tastebud-app/tastebud/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Review{},
		&models.Vote{},
		&models.Favorite{},
	))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newTestDB(t), "test-secret")

	user, token, err := svc.Register("Ada Cook", "adacook", "ada@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "password123", user.PasswordHash, "password must be hashed")

	loggedIn, loginToken, err := svc.Login("ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, loginToken)
}

func TestRegisterDuplicate(t *testing.T) {
	svc := NewAuthService(newTestDB(t), "test-secret")

	_, _, err := svc.Register("Ada Cook", "adacook", "ada@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Register("Other", "otherada", "ada@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserExists)

	_, _, err = svc.Register("Other", "adacook", "other@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newTestDB(t), "test-secret")

	_, _, err := svc.Register("Ada Cook", "adacook", "ada@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login("ada@example.com", "nottherightone")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("unknown@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	svc := NewAuthService(newTestDB(t), "test-secret")

	user, token, err := svc.Register("Ada Cook", "adacook", "ada@example.com", "password123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "adacook", claims.Username)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, token, err := svc.Register("Ada Cook", "adacook", "ada@example.com", "password123")
	require.NoError(t, err)

	other := NewAuthService(db, "a-different-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
