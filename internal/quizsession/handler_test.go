package quizsession_test

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/quizsession"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, quizzes aiquiz.Service) (*httptest.Server, *http.Client) {
	t.Helper()

	service := quizsession.NewService(quizsession.NewInMemoryStore(), quizzes)
	handler := quizsession.NewHandler(service)
	server := httptest.NewServer(quizsession.Routes(handler))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}
	return server, client
}

func postJSON(t *testing.T, client *http.Client, url, body string) *http.Response {
	t.Helper()
	resp, err := client.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestSessionEndpoints(t *testing.T) {
	quizzes := &fakeQuizService{questions: []aiquiz.Question{
		question("Q1", "a"), question("Q2", "b"),
	}}
	server, client := newTestServer(t, quizzes)

	t.Run("FirstTouchCreatesIdleSession", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/")
		require.NoError(t, err)

		var view quizsession.QuizView
		decode(t, resp, &view)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, quizsession.StateIdle, view.State)
		assert.NotEmpty(t, view.SessionID)
	})

	t.Run("GenerateSelectSubmitFlow", func(t *testing.T) {
		resp := postJSON(t, client, server.URL+"/generate",
			`{"text":"material","difficulty":"Medium","count":2}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view quizsession.QuizView
		decode(t, resp, &view)
		assert.Equal(t, quizsession.StatePresented, view.State)
		require.Len(t, view.Questions, 2)
		assert.Len(t, view.Questions[0].Options, 4)

		resp = postJSON(t, client, server.URL+"/answers", `{"index":0,"key":"a"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decode(t, resp, &view)
		assert.Equal(t, "a", view.Questions[0].Selected)

		resp = postJSON(t, client, server.URL+"/submit", `{}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var report quizsession.ScoreReport
		decode(t, resp, &report)
		assert.Equal(t, "1/2 (50.00%)", report.Score)
		assert.Equal(t, quizsession.TierGood, report.Feedback.Tier)
		assert.Equal(t, quizsession.OutcomeUnanswered, report.Results[1].Outcome)
	})

	t.Run("ResetReturnsToIdle", func(t *testing.T) {
		resp := postJSON(t, client, server.URL+"/reset", `{}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view quizsession.QuizView
		decode(t, resp, &view)
		assert.Equal(t, quizsession.StateIdle, view.State)
		assert.Empty(t, view.Questions)
	})
}

func TestSessionEndpointErrors(t *testing.T) {
	t.Run("InvalidDifficulty", func(t *testing.T) {
		server, client := newTestServer(t, &fakeQuizService{})
		resp := postJSON(t, client, server.URL+"/generate",
			`{"text":"x","difficulty":"Impossible","count":2}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("EmptyGeneration", func(t *testing.T) {
		server, client := newTestServer(t, &fakeQuizService{questions: []aiquiz.Question{}})
		resp := postJSON(t, client, server.URL+"/generate",
			`{"text":"x","difficulty":"Easy","count":2}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		// submitting afterwards must not fault, the quiz was never presented
		resp = postJSON(t, client, server.URL+"/submit", `{}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("SelectionOutOfRange", func(t *testing.T) {
		server, client := newTestServer(t, &fakeQuizService{questions: []aiquiz.Question{
			question("Q1", "a"),
		}})
		resp := postJSON(t, client, server.URL+"/generate",
			`{"text":"x","difficulty":"Easy","count":1}`)
		resp.Body.Close()

		resp = postJSON(t, client, server.URL+"/answers", `{"index":5,"key":"a"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
