package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/farellandr/fyyur/internal/flash"
	"github.com/farellandr/fyyur/internal/handlers"
	"github.com/farellandr/fyyur/internal/server"
	"github.com/farellandr/fyyur/internal/testkit"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingPublisher struct {
	mu     sync.Mutex
	queues []string
	events []any
}

func (p *recordingPublisher) Publish(_ context.Context, queueName string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queues = append(p.queues, queueName)
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) published() ([]string, []any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.queues...), append([]any(nil), p.events...)
}

type testClient struct {
	t         *testing.T
	router    http.Handler
	db        *gorm.DB
	publisher *recordingPublisher
	cookie    *http.Cookie
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	db := testkit.NewDB(t)
	store, err := flash.NewCookieStore("test-secret", false)
	if err != nil {
		t.Fatalf("NewCookieStore: %v", err)
	}
	publisher := &recordingPublisher{}
	router, err := server.NewRouter(db, store, publisher)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	t.Cleanup(handlers.SetNow(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)))
	return &testClient{t: t, router: router, db: db, publisher: publisher}
}

// do sends a request as a JSON client and keeps the session cookie like a
// browser would.
func (tc *testClient) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	tc.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Accept", "application/json")
	if tc.cookie != nil {
		req.AddCookie(tc.cookie)
	}

	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name != flash.CookieName {
			continue
		}
		if cookie.MaxAge < 0 || cookie.Value == "" {
			tc.cookie = nil
		} else {
			tc.cookie = cookie
		}
	}
	return w
}

func (tc *testClient) decode(w *httptest.ResponseRecorder, status int, v any) {
	tc.t.Helper()
	if w.Code != status {
		tc.t.Fatalf("status = %d, want %d; body %s", w.Code, status, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		tc.t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

type pageMessages struct {
	Messages []string `json:"messages"`
}

func (tc *testClient) messages(w *httptest.ResponseRecorder) []string {
	tc.t.Helper()
	var page pageMessages
	tc.decode(w, http.StatusOK, &page)
	return page.Messages
}

func (tc *testClient) expectMessage(w *httptest.ResponseRecorder, want string) {
	tc.t.Helper()
	got := tc.messages(w)
	if len(got) != 1 || got[0] != want {
		tc.t.Fatalf("messages = %q, want [%q]", got, want)
	}
}

func (tc *testClient) expectMessagePrefix(w *httptest.ResponseRecorder, prefix string) {
	tc.t.Helper()
	got := tc.messages(w)
	if len(got) != 1 || !strings.HasPrefix(got[0], prefix) {
		tc.t.Fatalf("messages = %q, want one starting with %q", got, prefix)
	}
}

func (tc *testClient) createVenue(name, city, state string, genres ...string) {
	tc.t.Helper()
	w := tc.do(http.MethodPost, "/venues/create", url.Values{
		"name":           {name},
		"city":           {city},
		"state":          {state},
		"address":        {"1015 Folsom Street"},
		"phone":          {"123-123-1234"},
		"website_link":   {"https://www.themusicalhop.com"},
		"seeking_talent": {"y"},
		"genres":         genres,
	})
	tc.expectMessage(w, "Venue "+name+" was successfully listed!")
}

func (tc *testClient) createArtist(name string, genres ...string) {
	tc.t.Helper()
	w := tc.do(http.MethodPost, "/artists/create", url.Values{
		"name":          {name},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"seeking_venue": {"y"},
		"genres":        genres,
	})
	tc.expectMessage(w, "Artist "+name+" was successfully listed!")
}

func (tc *testClient) createShow(artistID, venueID, startTime string) *httptest.ResponseRecorder {
	tc.t.Helper()
	return tc.do(http.MethodPost, "/shows/create", url.Values{
		"artist_id":  {artistID},
		"venue_id":   {venueID},
		"start_time": {startTime},
	})
}

func (tc *testClient) expectRedirect(w *httptest.ResponseRecorder, location string) {
	tc.t.Helper()
	if w.Code != http.StatusSeeOther {
		tc.t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != location {
		tc.t.Fatalf("Location = %q, want %q", got, location)
	}
}
