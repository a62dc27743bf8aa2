package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/lanrat/sortviz"
	"github.com/lanrat/sortviz/replay"
	"github.com/lanrat/sortviz/server"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(server.New(nil, nil).Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestAlgorithmsEndpoint(t *testing.T) {
	ts := testServer(t)

	res, err := http.Get(ts.URL + "/algorithms")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, 200, res.StatusCode)

	var algorithms []struct {
		Name string `json:"name"`
		Next string `json:"next"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&algorithms))
	require.Len(t, algorithms, 5)
	require.Equal(t, "bubble", algorithms[0].Name)
	require.Equal(t, "insertion", algorithms[0].Next)
	require.Equal(t, "stupid", algorithms[4].Name)
	require.Equal(t, "bubble", algorithms[4].Next)
}

func TestTraceEndpoint(t *testing.T) {
	ts := testServer(t)

	res := postJSON(t, ts.URL+"/traces", map[string]interface{}{
		"values":    []float64{3, 1, 2},
		"algorithm": "selection",
		"trait":     "happiness",
	})
	require.Equal(t, 200, res.StatusCode)

	var body struct {
		Algorithm string        `json:"algorithm"`
		Steps     sortviz.Steps `json:"steps"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, "selection", body.Algorithm)
	require.NotEmpty(t, body.Steps)

	final, err := replay.Apply([]float64{3, 1, 2}, body.Steps)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, final)
}

func TestTraceEndpointEmptyInput(t *testing.T) {
	ts := testServer(t)

	res := postJSON(t, ts.URL+"/traces", map[string]interface{}{
		"values":    []float64{},
		"algorithm": "bubble",
		"trait":     "happiness",
	})
	require.Equal(t, 400, res.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Contains(t, body["error"], "empty input")
}

func TestTraceEndpointUnknownAlgorithm(t *testing.T) {
	ts := testServer(t)

	res := postJSON(t, ts.URL+"/traces", map[string]interface{}{
		"values":    []float64{1, 2},
		"algorithm": "bogo",
		"trait":     "happiness",
	})
	require.Equal(t, 400, res.StatusCode)
}

func TestRandomizeEndpoint(t *testing.T) {
	ts := testServer(t)

	seed := int64(9)
	res := postJSON(t, ts.URL+"/randomize", map[string]interface{}{
		"count": 5,
		"seed":  seed,
	})
	require.Equal(t, 200, res.StatusCode)

	var body struct {
		Steps sortviz.Steps `json:"steps"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

	want := sortviz.RandomizePositionsConfig(make([]int, 5), &sortviz.Config{Rand: sortviz.SeededRand(seed)})
	require.Equal(t, want, []sortviz.Step(body.Steps))
}

func TestRandomizeEndpointNegativeCount(t *testing.T) {
	ts := testServer(t)

	res := postJSON(t, ts.URL+"/randomize", map[string]interface{}{"count": -1})
	require.Equal(t, 400, res.StatusCode)
}

func TestStreamEndpoint(t *testing.T) {
	ts := testServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/traces/stream?values=3,1,2&algorithm=bubble&trait=happiness"
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer ws.Close()

	var steps []sortviz.Step
	done := false
	for !done {
		wt, data, err := ws.ReadMessage()
		require.NoError(t, err)
		require.Equal(t, websocket.TextMessage, wt)

		var probe map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &probe))
		if _, ok := probe["op"]; ok {
			step, err := sortviz.UnmarshalStep(data)
			require.NoError(t, err)
			steps = append(steps, step)
			continue
		}
		require.NotContains(t, probe, "error")
		require.Equal(t, true, probe["done"])
		done = true
	}

	final, err := replay.Apply([]float64{3, 1, 2}, steps)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, final)
}

func TestStreamEndpointBadAlgorithm(t *testing.T) {
	ts := testServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/traces/stream?values=1,2&algorithm=bogo&trait=h"
	_, res, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.Equal(t, 400, res.StatusCode)
}

// An empty value list fails after the upgrade, as a terminal error message.
func TestStreamEndpointEmptyInput(t *testing.T) {
	ts := testServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/traces/stream?algorithm=bubble&trait=h"
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer ws.Close()

	_, data, err := ws.ReadMessage()
	require.NoError(t, err)
	var probe map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &probe))
	require.Contains(t, probe["error"], "empty input")
}
