package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/TWRT/taskboard/internal/api/handlers"
	"github.com/TWRT/taskboard/internal/metrics"
)

// pathMatcher reports whether path matches and, for item routes, the id
// taken from the path.
type pathMatcher func(path string) (id string, ok bool)

type route struct {
	name    string
	method  string
	match   pathMatcher
	handler http.HandlerFunc
}

func anyPath(string) (string, bool) { return "", true }

func exactPath(want string) pathMatcher {
	return func(path string) (string, bool) {
		return "", path == want
	}
}

// taskItem matches /tasks/{id}. The id is the third "/"-separated segment;
// anything after it is ignored.
func taskItem(path string) (string, bool) {
	if !strings.HasPrefix(path, "/tasks/") {
		return "", false
	}
	return strings.Split(path, "/")[2], true
}

// APIRouter dispatches /api requests through an ordered route table; the
// first entry whose method and path both match handles the request.
type APIRouter struct {
	routes []route
}

func NewAPIRouter(tasks *handlers.TaskHandler, theme *handlers.ThemeHandler, summary *handlers.SummaryHandler) *APIRouter {
	return &APIRouter{
		routes: []route{
			{"preflight", http.MethodOptions, anyPath, preflight},
			{"get_theme", http.MethodGet, exactPath("/theme"), theme.GetTheme},
			{"set_theme", http.MethodPost, exactPath("/theme"), theme.SetTheme},
			{"summarize", http.MethodPost, exactPath("/summarize"), summary.Summarize},
			{"list_tasks", http.MethodGet, exactPath("/tasks"), tasks.ListTasks},
			{"create_task", http.MethodPost, exactPath("/tasks"), tasks.CreateTask},
			{"update_task", http.MethodPut, taskItem, tasks.UpdateTask},
			{"delete_task", http.MethodDelete, taskItem, tasks.DeleteTask},
		},
	}
}

// Matching runs on the escaped path so an encoded "/" stays inside the id.
func (a *APIRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.EscapedPath(), "/api")

	for _, rt := range a.routes {
		if rt.method != r.Method {
			continue
		}
		id, ok := rt.match(path)
		if !ok {
			continue
		}
		metrics.SetRoute(r.Context(), rt.name)
		r.SetPathValue("id", id)
		rt.handler(w, r)
		return
	}

	metrics.SetRoute(r.Context(), "not_found")
	notFound(w)
}

func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	io.WriteString(w, "Not Found")
}
