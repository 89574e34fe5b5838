package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/jsphweid/chordlab/cmd"
	"github.com/jsphweid/chordlab/model"
	"github.com/stretchr/testify/assert"
)

func postJSON(t *testing.T, router http.Handler, path string, body any) *http.Response {
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err.Error())
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Result()
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatal(err.Error())
	}
}

func TestDetectEndpoint(t *testing.T) {
	router := cmd.NewRouter()
	resp := postJSON(t, router, "/detect", model.DetectRequestBody{Notes: []int{64, 67, 72}})

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var detectResponse model.DetectResponse
	decodeBody(t, resp, &detectResponse)
	if assert.NotNil(detectResponse.Chord) {
		assert.Equal("C/E", *detectResponse.Chord)
	}
}

func TestDetectEndpointNoMatch(t *testing.T) {
	router := cmd.NewRouter()
	resp := postJSON(t, router, "/detect", model.DetectRequestBody{Notes: []int{60, 61, 62}})

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var detectResponse model.DetectResponse
	decodeBody(t, resp, &detectResponse)
	assert.Nil(detectResponse.Chord)
}

func TestMatchEndpoint(t *testing.T) {
	router := cmd.NewRouter()
	resp := postJSON(t, router, "/match", model.MatchRequestBody{
		Notes:  []int{67, 72, 76},
		Target: "C/G",
	})

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var matchResponse model.MatchResponse
	decodeBody(t, resp, &matchResponse)
	assert.True(matchResponse.Matches)
}

func TestVoicingEndpoint(t *testing.T) {
	router := cmd.NewRouter()
	resp := postJSON(t, router, "/voicing", model.VoicingRequestBody{Chord: "C/G"})

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var voicingResponse model.VoicingResponse
	decodeBody(t, resp, &voicingResponse)
	assert.Equal([]int{67, 72, 76}, voicingResponse.Notes)
}

func TestVoicingEndpointAcceptsBaseZero(t *testing.T) {
	router := cmd.NewRouter()
	base := 0
	resp := postJSON(t, router, "/voicing", model.VoicingRequestBody{Chord: "C", Base: &base})

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var voicingResponse model.VoicingResponse
	decodeBody(t, resp, &voicingResponse)
	assert.Equal([]int{0, 4, 7}, voicingResponse.Notes)
}

func TestVoicingEndpointRejectsBaseOutOfRange(t *testing.T) {
	router := cmd.NewRouter()
	base := 105
	resp := postJSON(t, router, "/voicing", model.VoicingRequestBody{Chord: "C", Base: &base})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestSessionLifecycle(t *testing.T) {
	router := cmd.NewRouter()
	resp := postJSON(t, router, "/sessions", model.SessionRequestBody{
		ChordCount:   5,
		Mode:         model.ModeChordTypes,
		ChordTypeIds: []string{"maj"},
	})

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var created model.SessionResponse
	decodeBody(t, resp, &created)
	assert.NotEmpty(created.Id)
	assert.Len(created.Chords, 5)

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+created.Id, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	fetched := w.Result()
	assert.Equal(200, fetched.StatusCode)

	var got model.SessionResponse
	decodeBody(t, fetched, &got)
	assert.Equal(created.Chords, got.Chords)
}

func TestSessionEmptyPoolIsConfigError(t *testing.T) {
	router := cmd.NewRouter()
	resp := postJSON(t, router, "/sessions", model.SessionRequestBody{
		ChordCount: 5,
		Mode:       model.ModeChordTypes,
	})

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var errResponse model.ErrorResponse
	decodeBody(t, resp, &errResponse)
	assert.NotEmpty(errResponse.Error)
}

func TestConcurrentSessionCreates(t *testing.T) {
	router := cmd.NewRouter()
	body := model.SessionRequestBody{
		ChordCount:   8,
		Mode:         model.ModeChordTypes,
		ChordTypeIds: []string{"maj", "min"},
	}

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err.Error())
	}

	var wg sync.WaitGroup
	results := make(chan model.SessionResponse, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewReader(data))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			resp := w.Result()
			if resp.StatusCode != 200 {
				t.Errorf("unexpected status %v", resp.StatusCode)
				return
			}
			respData, _ := io.ReadAll(resp.Body)
			var created model.SessionResponse
			if err := json.Unmarshal(respData, &created); err != nil {
				t.Error(err.Error())
				return
			}
			results <- created
		}()
	}
	wg.Wait()
	close(results)

	assert := assert.New(t)
	seen := make(map[string]bool)
	count := 0
	for created := range results {
		count++
		assert.False(seen[created.Id])
		seen[created.Id] = true
		assert.Len(created.Chords, 8)
	}
	assert.Equal(10, count)
}

func TestUnknownSessionIs404(t *testing.T) {
	router := cmd.NewRouter()
	req := httptest.NewRequest(http.MethodGet, "/sessions/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Result().StatusCode)
}
