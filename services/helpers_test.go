package services

import (
	"path/filepath"
	"testing"
	"time"

	"blog/database"
	"blog/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "test.db"), logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	user, err := NewUserService(db).CreateUser(name, email, "test")
	require.NoError(t, err)
	return user
}

func createTestPosts(t *testing.T, db *gorm.DB, author *models.User, n int) []models.Post {
	t.Helper()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		post := models.Post{
			Title:    "Post",
			Content:  "<p>body</p>\n",
			Datetime: base.Add(time.Duration(i) * time.Minute),
			AuthorID: author.ID,
		}
		require.NoError(t, db.Create(&post).Error)
		posts = append(posts, post)
	}
	return posts
}
