package gemini_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"TraderPulse/internal/service/gemini"
	xhttp "TraderPulse/pkg/http"
)

func newClient(t *testing.T, handler http.HandlerFunc) *gemini.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gemini.New("test-key", srv.URL, "gemini-2.0-flash", xhttp.NewClient(xhttp.WithTimeout(2*time.Second)))
}

func TestGenerateJSON_RequestShapeAndResponseText(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
			GenerationConfig struct {
				ResponseMimeType string `json:"responseMimeType"`
			} `json:"generationConfig"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 1)
		require.Equal(t, "analyze AAPL", body.Contents[0].Parts[0].Text)
		require.Equal(t, "application/json", body.GenerationConfig.ResponseMimeType)

		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"{\"sentiment\":\"Neutral\",\"justification\":\"ok\"}"}]}}]}`)
	})

	raw, err := client.GenerateJSON(t.Context(), "analyze AAPL")
	require.NoError(t, err)
	require.JSONEq(t, `{"sentiment":"Neutral","justification":"ok"}`, string(raw))
}

func TestGenerateJSON_EmptyCandidatesIsError(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	})

	_, err := client.GenerateJSON(t.Context(), "analyze AAPL")
	require.Error(t, err)
}

func TestGenerateJSON_TransportFailureIsError(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.GenerateJSON(t.Context(), "analyze AAPL")
	require.Error(t, err)
}
