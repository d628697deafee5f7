package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/", WithTimeout(5*time.Second))
}

func TestLogin_SendsCredentialsAndReturnsToken(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "demo@user.com", body["email"])
		assert.Equal(t, "demo", body["password"])

		_, _ = io.WriteString(w, `{"access_token":"tok-1","token_type":"bearer"}`)
	})

	tok, err := c.Login(context.Background(), "demo@user.com", "demo")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
}

func TestFederatedLogin_Body(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/federated", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "google-id-token", body["provider_token"])
		_, _ = io.WriteString(w, `{"access_token":"tok-fed"}`)
	})

	tok, err := c.FederatedLogin(context.Background(), "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "tok-fed", tok)
}

func TestToken_EmptyAccessTokenIsServerError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	_, err := c.Register(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrServer)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadRequest, ErrRejected},
		{http.StatusNotFound, ErrRejected},
		{http.StatusBadGateway, ErrServer},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"detail":"nope"}`, tt.status)
			})
			_, err := c.Categories(context.Background(), "tok")
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "/quiz/categories")
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestCategories_BearerAndDecode(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"id":9,"name":"General Knowledge"},{"id":17,"name":"Science & Nature"}]`)
	})

	cats, err := c.Categories(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{ID: 9, Name: "General Knowledge"}, {ID: 17, Name: "Science & Nature"}}, cats)
}

func TestStartQuiz_QueryAndItems(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/quiz/start", r.URL.Path)
		assert.Equal(t, "9", r.URL.Query().Get("category"))
		assert.Equal(t, "easy", r.URL.Query().Get("difficulty"))
		assert.Equal(t, "2", r.URL.Query().Get("amount"))
		_, _ = io.WriteString(w, `{"items":[
			{"question":"Q1","correct_answer":"A","incorrect_answers":["B","C","D"]},
			{"question":"Q2","correct_answer":"X","incorrect_answers":["Y"]}]}`)
	})

	qs, err := c.StartQuiz(context.Background(), "tok", 9, models.DifficultyEasy, 2)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, models.Question{Text: "Q1", CorrectAnswer: "A", IncorrectAnswers: []string{"B", "C", "D"}}, qs[0])
}

func TestSubmitScore_IdempotencyKeyAndBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/scores", r.URL.Path)
		assert.Equal(t, "sess-1", r.Header.Get("Idempotency-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"total": 2.0, "correct": 1.0, "category": "9", "difficulty": "easy"}, body)

		_, _ = io.WriteString(w, `{"id":5,"total":2,"correct":1,"category":"9","difficulty":"easy"}`)
	})

	rec, err := c.SubmitScore(context.Background(), "tok", "sess-1",
		models.ScoreRecord{Total: 2, Correct: 1, Category: "9", Difficulty: "easy"})
	require.NoError(t, err)
	assert.Equal(t, 5, rec.ID)
}

func TestProfile_GetPatchDelete(t *testing.T) {
	var gotPatch map[string]any
	var deleted bool
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/profile", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			_, _ = io.WriteString(w, `{"email":"demo@user.com","name":"Demo"}`)
		case http.MethodPatch:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPatch))
			_, _ = io.WriteString(w, `{"email":"demo@user.com","name":"Neo"}`)
		case http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		}
	})
	ctx := context.Background()

	p, err := c.GetProfile(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "Demo", p.Name)

	name := "Neo"
	p, err = c.UpdateProfile(ctx, "tok", models.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Neo", p.Name)
	assert.Equal(t, map[string]any{"name": "Neo"}, gotPatch, "unset fields are omitted")

	require.NoError(t, c.DeleteProfile(ctx, "tok"))
	assert.True(t, deleted)
}

func TestUnreachableServerIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url)
	_, err := c.Scores(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, c.Close())
}

func TestCanceledContextIsReturnedAsIs(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Scores(ctx, "tok")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMalformedJSONIsServerError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"items":`)
	})
	_, err := c.StartQuiz(context.Background(), "tok", 9, models.DifficultyHard, 1)
	assert.ErrorIs(t, err, ErrServer)
}
