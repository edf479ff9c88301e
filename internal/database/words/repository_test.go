package words

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordbook/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "words.db")

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{}, &entities.Word{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db, NewRepository(db)
}

func createTestUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	user := &entities.User{Username: username, Password: "pw"}
	require.NoError(t, db.Create(user).Error)
	return user.ID
}

func wordValues(items []entities.Word) []string {
	out := make([]string, len(items))
	for i, w := range items {
		out[i] = w.Word
	}
	return out
}

func TestRepository_AddWord(t *testing.T) {
	db, repo := setupTestDB(t)
	userID := createTestUser(t, db, "alice")

	id, err := repo.AddWord(userID, "cat", "बिल्ली")

	require.NoError(t, err)
	assert.NotZero(t, id)

	items, err := repo.ListWords(userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "cat", items[0].Word)
	assert.Equal(t, "बिल्ली", items[0].Meaning)
}

func TestRepository_AddWord_AllowsDuplicates(t *testing.T) {
	db, repo := setupTestDB(t)
	userID := createTestUser(t, db, "alice")

	first, err := repo.AddWord(userID, "cat", "one")
	require.NoError(t, err)
	second, err := repo.AddWord(userID, "cat", "two")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	count, err := repo.CountWords(userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRepository_AddWord_UnknownUserRejected(t *testing.T) {
	_, repo := setupTestDB(t)

	_, err := repo.AddWord(4242, "cat", "बिल्ली")

	assert.Error(t, err)
}

func TestRepository_ListWords_ScopedAndOrdered(t *testing.T) {
	db, repo := setupTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	for _, w := range []string{"apple", "banana", "cherry"} {
		_, err := repo.AddWord(alice, w, "m")
		require.NoError(t, err)
	}
	_, err := repo.AddWord(bob, "durian", "m")
	require.NoError(t, err)

	items, err := repo.ListWords(alice)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, wordValues(items))

	items, err = repo.ListWords(bob)
	require.NoError(t, err)
	assert.Equal(t, []string{"durian"}, wordValues(items))
}

func TestRepository_SearchWords(t *testing.T) {
	db, repo := setupTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	for _, w := range []string{"Catalog", "dog", "concatenate"} {
		_, err := repo.AddWord(alice, w, "m")
		require.NoError(t, err)
	}
	_, err := repo.AddWord(bob, "cat", "m")
	require.NoError(t, err)

	items, err := repo.SearchWords(alice, "CAT")
	require.NoError(t, err)
	assert.Equal(t, []string{"Catalog", "concatenate"}, wordValues(items))

	items, err = repo.SearchWords(alice, "zebra")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRepository_SearchWords_WildcardsAreLiteral(t *testing.T) {
	db, repo := setupTestDB(t)
	userID := createTestUser(t, db, "alice")

	for _, w := range []string{"100%", "a_b", "abc", `back\slash`} {
		_, err := repo.AddWord(userID, w, "m")
		require.NoError(t, err)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"%", []string{"100%"}},
		{"_", []string{"a_b"}},
		{"a_", []string{"a_b"}},
		{`\`, []string{`back\slash`}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			items, err := repo.SearchWords(userID, tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.want, wordValues(items))
		})
	}
}

func TestRepository_ListWordsPage(t *testing.T) {
	db, repo := setupTestDB(t)
	userID := createTestUser(t, db, "alice")

	for i := 1; i <= 23; i++ {
		_, err := repo.AddWord(userID, fmt.Sprintf("w%02d", i), "m")
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		page      int
		wantLen   int
		wantFirst string
	}{
		{"first page", 1, 10, "w23"},
		{"second page", 2, 10, "w13"},
		{"last partial page", 3, 3, "w03"},
		{"past the end", 4, 0, ""},
		{"far past the end", 100, 0, ""},
		{"offset would overflow", math.MaxInt, 0, ""},
		{"zero normalised to first", 0, 10, "w23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := repo.ListWordsPage(userID, tt.page, 10)

			require.NoError(t, err)
			assert.Equal(t, int64(23), total)
			assert.NotNil(t, items)
			assert.Len(t, items, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, items[0].Word)
			}
		})
	}
}

func TestRepository_ListWordsPage_ConcatenationMatchesListWords(t *testing.T) {
	db, repo := setupTestDB(t)
	userID := createTestUser(t, db, "alice")

	for i := 1; i <= 17; i++ {
		_, err := repo.AddWord(userID, fmt.Sprintf("w%02d", i), "m")
		require.NoError(t, err)
	}

	var paged []string
	for page := 1; ; page++ {
		items, _, err := repo.ListWordsPage(userID, page, 4)
		require.NoError(t, err)
		if len(items) == 0 {
			break
		}
		paged = append(paged, wordValues(items)...)
	}

	all, err := repo.ListWords(userID)
	require.NoError(t, err)
	expected := wordValues(all)
	for i, j := 0, len(expected)-1; i < j; i, j = i+1, j-1 {
		expected[i], expected[j] = expected[j], expected[i]
	}

	assert.Equal(t, expected, paged)
}

func TestRepository_DeleteWord(t *testing.T) {
	db, repo := setupTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	_, err := repo.AddWord(alice, "apple", "m")
	require.NoError(t, err)
	_, err = repo.AddWord(alice, "apple", "m")
	require.NoError(t, err)
	_, err = repo.AddWord(alice, "Apple", "m")
	require.NoError(t, err)
	_, err = repo.AddWord(bob, "apple", "m")
	require.NoError(t, err)

	affected, err := repo.DeleteWord(alice, "apple")
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	items, err := repo.ListWords(alice)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple"}, wordValues(items))

	items, err = repo.ListWords(bob)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple"}, wordValues(items))
}

func TestRepository_DeleteWord_Missing(t *testing.T) {
	db, repo := setupTestDB(t)
	userID := createTestUser(t, db, "alice")

	affected, err := repo.DeleteWord(userID, "ghost")

	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestRepository_GetMeaning(t *testing.T) {
	db, repo := setupTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	id, err := repo.AddWord(alice, "cat", "बिल्ली")
	require.NoError(t, err)

	meaning, err := repo.GetMeaning(alice, id)
	require.NoError(t, err)
	assert.Equal(t, "बिल्ली", meaning)

	_, err = repo.GetMeaning(bob, id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetMeaning(alice, id+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, *Repository) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return mock, NewRepository(db)
}

func TestRepository_AddWord_StoreError(t *testing.T) {
	mock, repo := setupMockDB(t)
	errConn := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "words"`).WillReturnError(errConn)
	mock.ExpectRollback()

	_, err := repo.AddWord(1, "cat", "बिल्ली")

	assert.ErrorIs(t, err, errConn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListWordsPage_CountError(t *testing.T) {
	mock, repo := setupMockDB(t)
	errConn := errors.New("connection reset")

	mock.ExpectQuery(`SELECT count\(\*\) FROM "words"`).WillReturnError(errConn)

	items, total, err := repo.ListWordsPage(1, 1, 10)

	assert.ErrorIs(t, err, errConn)
	assert.Nil(t, items)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteWord_StoreError(t *testing.T) {
	mock, repo := setupMockDB(t)
	errConn := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "words"`).WillReturnError(errConn)
	mock.ExpectRollback()

	_, err := repo.DeleteWord(1, "cat")

	assert.ErrorIs(t, err, errConn)
	assert.NoError(t, mock.ExpectationsWereMet())
}
