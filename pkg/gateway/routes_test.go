package gateway

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRoutes = `{
  "/users/{id}": {
    "GET": {"target": "http://localhost:9001/users/{id}", "description": "Get user"},
    "put": {"target": "http://localhost:9001/users/{id}/update", "description": "Update user"}
  },
  "/health": {
    "GET": {"target": "static_response", "description": "Health check", "response": {"status": "ok"}}
  }
}`

func TestParseRoutes(t *testing.T) {
	routes, err := ParseRoutes([]byte(testRoutes))
	require.NoError(t, err)
	require.Len(t, routes, 3)

	assert.Equal(t, "/health", routes[0].Pattern)
	assert.True(t, routes[0].Static())
	assert.JSONEq(t, `{"status": "ok"}`, string(routes[0].Response))

	assert.Equal(t, "/users/{id}", routes[1].Pattern)
	assert.Equal(t, "GET", routes[1].Method)
	assert.Equal(t, "PUT", routes[2].Method)
	assert.Equal(t, "Update user", routes[2].Description)
}

func TestParseRoutesErrors(t *testing.T) {
	tests := map[string]string{
		"not json":        `{`,
		"relative":        `{"users": {"GET": {"target": "http://x/users"}}}`,
		"bad method":      `{"/users": {"PATCH": {"target": "http://x/users"}}}`,
		"no target host":  `{"/users": {"GET": {"target": "/users"}}}`,
		"empty target":    `{"/users": {"GET": {"description": "x"}}}`,
		"wrong structure": `{"/users": ["GET"]}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRoutes([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadRoutes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.json")
	require.NoError(t, os.WriteFile(path, []byte(testRoutes), 0o600))

	routes, err := LoadRoutes(path)
	require.NoError(t, err)
	assert.Len(t, routes, 3)

	_, err = LoadRoutes(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestExpandTarget(t *testing.T) {
	got := expandTarget("http://localhost:9001/users/{id}/{id}/x", map[string]string{"id": "7"})
	assert.Equal(t, "http://localhost:9001/users/7/7/x", got)

	got = expandTarget("http://localhost:9001/users/{id}", map[string]string{"id": "a b"})
	assert.Equal(t, "http://localhost:9001/users/a%20b", got)
}
