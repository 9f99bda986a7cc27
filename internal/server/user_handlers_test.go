package server

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// expectProfileQueries queues the three queries behind profile assembly.
func expectProfileQueries(mock sqlmock.Sqlmock, userID uint, name, apiKey string) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "api_key"}).AddRow(userID, name, apiKey))
	mock.ExpectQuery(`WHERE f.follower_id =`).
		WithArgs(userID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "beagle"))
	mock.ExpectQuery(`WHERE f.followed_id =`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
}

func TestGetMyProfile(t *testing.T) {
	s, mock := newTestServer(t)
	app := newAuthedApp(s)

	expectProfileQueries(mock, testUser.ID, testUser.Name, testUser.APIKey)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["result"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, float64(1), user["id"])
	assert.Equal(t, "corgi", user["name"])
	// Only the owner's own profile carries the api key.
	assert.Equal(t, "test", user["api_key"])

	following := user["following"].([]interface{})
	require.Len(t, following, 1)
	ref := following[0].(map[string]interface{})
	assert.Equal(t, "2", ref["id"])
	assert.Equal(t, "beagle", ref["name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s, mock := newTestServer(t)
		app := newAuthedApp(s)

		expectProfileQueries(mock, 2, "beagle", "other-key")

		req := httptest.NewRequest(http.MethodGet, "/api/users/2", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, true, body["result"])

		user := body["user"].(map[string]interface{})
		assert.Equal(t, "beagle", user["name"])
		// Someone else's profile never exposes their api key.
		_, exposed := user["api_key"]
		assert.False(t, exposed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		s, mock := newTestServer(t)
		app := newAuthedApp(s)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/users/99", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, false, body["result"])
		assert.Equal(t, "User not found", body["message"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s, mock := newTestServer(t)
		app := newAuthedApp(s)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "followers"`)).
			WithArgs(testUser.ID, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req := httptest.NewRequest(http.MethodPost, "/api/users/2/follow", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, true, body["result"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already Following", func(t *testing.T) {
		s, mock := newTestServer(t)
		app := newAuthedApp(s)

		// A duplicate edge surfaces through the not-found contract.
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "followers"`)).
			WithArgs(testUser.ID, 2).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		req := httptest.NewRequest(http.MethodPost, "/api/users/2/follow", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, false, body["result"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUnfollowUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s, mock := newTestServer(t)
		app := newAuthedApp(s)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "followers" WHERE follower_id = $1 AND followed_id = $2`)).
			WithArgs(testUser.ID, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		req := httptest.NewRequest(http.MethodDelete, "/api/users/2/follow", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, true, body["result"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Never Followed", func(t *testing.T) {
		s, mock := newTestServer(t)
		app := newAuthedApp(s)

		// Removing an edge that was never there still succeeds.
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "followers" WHERE follower_id = $1 AND followed_id = $2`)).
			WithArgs(testUser.ID, 7).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		req := httptest.NewRequest(http.MethodDelete, "/api/users/7/follow", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, true, body["result"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
