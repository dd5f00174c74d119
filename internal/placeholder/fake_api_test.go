package placeholder

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

// fakeAPI mimics the JSONPlaceholder routes the client uses.
type fakeAPI struct {
	mu       sync.Mutex
	users    []map[string]any
	posts    map[string]string // raw JSON per user id
	todos    map[string]string
	comments map[int]string
	nextID   int
	requests []string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{
		users: []map[string]any{
			{"id": 1, "name": "Leanne Graham", "username": "Bret"},
			{"id": 2, "name": "Ervin Howell", "username": "Antonette"},
		},
		posts:    map[string]string{},
		todos:    map[string]string{},
		comments: map[int]string{},
		nextID:   11,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", api.listUsers)
	mux.HandleFunc("POST /users", api.createUser)
	mux.HandleFunc("GET /users/{id}", api.getUser)
	mux.HandleFunc("PUT /users/{id}", api.updateUser)
	mux.HandleFunc("DELETE /users/{id}", api.deleteUser)
	mux.HandleFunc("GET /users/{id}/posts", func(w http.ResponseWriter, r *http.Request) {
		api.rawOr(w, api.posts, r.PathValue("id"))
	})
	mux.HandleFunc("GET /users/{id}/todos", func(w http.ResponseWriter, r *http.Request) {
		api.rawOr(w, api.todos, r.PathValue("id"))
	})
	mux.HandleFunc("GET /posts/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		api.mu.Lock()
		body, ok := api.comments[id]
		api.mu.Unlock()
		if !ok {
			body = "[]"
		}
		writeRaw(w, http.StatusOK, body)
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.requests = append(api.requests, r.Method+" "+r.URL.RequestURI())
		api.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return api, srv
}

func (a *fakeAPI) setPosts(userID, raw string) {
	a.mu.Lock()
	a.posts[userID] = raw
	a.mu.Unlock()
}

func (a *fakeAPI) setTodos(userID, raw string) {
	a.mu.Lock()
	a.todos[userID] = raw
	a.mu.Unlock()
}

func (a *fakeAPI) setComments(postID int, raw string) {
	a.mu.Lock()
	a.comments[postID] = raw
	a.mu.Unlock()
}

func (a *fakeAPI) lastRequest() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.requests) == 0 {
		return ""
	}
	return a.requests[len(a.requests)-1]
}

func (a *fakeAPI) rawOr(w http.ResponseWriter, m map[string]string, id string) {
	a.mu.Lock()
	body, ok := m[id]
	a.mu.Unlock()
	if !ok {
		body = "[]"
	}
	writeRaw(w, http.StatusOK, body)
}

func (a *fakeAPI) listUsers(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	username := r.URL.Query().Get("username")
	out := []map[string]any{}
	for _, u := range a.users {
		if username == "" || u["username"] == username {
			out = append(out, u)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *fakeAPI) getUser(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, u := range a.users {
		if fmt.Sprint(u["id"]) == r.PathValue("id") {
			writeJSON(w, http.StatusOK, u)
			return
		}
	}
	writeRaw(w, http.StatusNotFound, "{}")
}

func (a *fakeAPI) createUser(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{}
	raw, _ := io.ReadAll(r.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		writeRaw(w, http.StatusInternalServerError, "SyntaxError")
		return
	}
	a.mu.Lock()
	body["id"] = a.nextID
	a.nextID++
	a.users = append(a.users, body)
	a.mu.Unlock()
	writeJSON(w, http.StatusCreated, body)
}

func (a *fakeAPI) updateUser(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{}
	raw, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(raw, &body)
	id, _ := strconv.Atoi(r.PathValue("id"))
	body["id"] = id
	writeJSON(w, http.StatusOK, body)
}

func (a *fakeAPI) deleteUser(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.users[:0]
	for _, u := range a.users {
		if fmt.Sprint(u["id"]) != r.PathValue("id") {
			kept = append(kept, u)
		}
	}
	a.users = kept
	writeRaw(w, http.StatusOK, "{}")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	raw, _ := json.Marshal(v)
	writeRaw(w, status, string(raw))
}

func writeRaw(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
