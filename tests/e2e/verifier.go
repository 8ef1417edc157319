//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const DefaultRecognizedRoom = "101"

// fakeVerifier answers every photo with a configurable room.
type fakeVerifier struct {
	mu   sync.RWMutex
	room string
	srv  *httptest.Server
}

func startFakeVerifier(t *testing.T) *fakeVerifier {
	t.Helper()

	v := &fakeVerifier{room: DefaultRecognizedRoom}
	v.srv = httptest.NewServer(http.HandlerFunc(v.recognize))
	t.Cleanup(v.srv.Close)
	return v
}

func (v *fakeVerifier) endpoint() string {
	return v.srv.URL + "/recognize"
}

func (v *fakeVerifier) set(room string) {
	v.mu.Lock()
	v.room = room
	v.mu.Unlock()
}

func (v *fakeVerifier) recognize(w http.ResponseWriter, r *http.Request) {
	if _, _, err := r.FormFile("image"); err != nil {
		http.Error(w, "image required", http.StatusBadRequest)
		return
	}

	v.mu.RLock()
	room := v.room
	v.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"room": room})
}
