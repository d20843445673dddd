package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
)

// StaticTarget marks a route answered by the gateway itself with Response.
const StaticTarget = "static_response"

// Route binds one method on one path pattern to a backend.
type Route struct {
	Pattern     string          `json:"-"`
	Method      string          `json:"-"`
	Target      string          `json:"target"`
	Description string          `json:"description"`
	Response    json.RawMessage `json:"response,omitempty"`
}

// Static reports whether the route is answered without a backend.
func (r Route) Static() bool {
	return r.Target == StaticTarget
}

// LoadRoutes reads a route table file.
func LoadRoutes(path string) ([]Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading routes: %w", err)
	}
	routes, err := ParseRoutes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return routes, nil
}

// ParseRoutes decodes a table of the form
//
//	{"/users/{id}": {"GET": {"target": "http://localhost:9001/users/{id}", "description": "..."}}}
//
// Routes are returned sorted by pattern, then method.
func ParseRoutes(data []byte) ([]Route, error) {
	var table map[string]map[string]Route
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}

	var routes []Route
	for pattern, methods := range table {
		if !strings.HasPrefix(pattern, "/") {
			return nil, fmt.Errorf("pattern %q must start with /", pattern)
		}
		for method, route := range methods {
			route.Pattern = pattern
			route.Method = strings.ToUpper(method)
			if err := route.validate(); err != nil {
				return nil, err
			}
			routes = append(routes, route)
		}
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Pattern != routes[j].Pattern {
			return routes[i].Pattern < routes[j].Pattern
		}
		return routes[i].Method < routes[j].Method
	})
	return routes, nil
}

func (r Route) validate() error {
	switch r.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return fmt.Errorf("%s %s: unsupported method", r.Method, r.Pattern)
	}
	if r.Static() {
		return nil
	}
	u, err := url.Parse(r.Target)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s %s: invalid target %q", r.Method, r.Pattern, r.Target)
	}
	return nil
}

// expandTarget substitutes {name} placeholders in the target with vars.
func expandTarget(target string, vars map[string]string) string {
	for k, v := range vars {
		target = strings.ReplaceAll(target, "{"+k+"}", url.PathEscape(v))
	}
	return target
}
