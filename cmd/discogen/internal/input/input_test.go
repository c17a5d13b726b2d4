package input

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/broady/discogen"
)

const tasksJSON = `{
  "name": "tasks",
  "version": "v1",
  "schemas": {"Task": {"type": "object", "properties": {"title": {"type": "string"}}}},
  "resources": {"tasks": {"methods": {"list": {"httpMethod": "GET", "path": "lists/{tasklist}/tasks"}}}}
}`

const petsYAML = `
openapi: 3.0.3
info:
  title: Pet Store
  version: 1.0.0
paths: {}
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_Auto(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantName string
		schema   string
	}{
		{"discovery json", "tasks.json", tasksJSON, "tasks", "Task"},
		{"openapi yaml", "pets.yaml", petsYAML, "petstore", "Pet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := Load(context.Background(), writeFile(t, tt.file, tt.content), Options{})
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if svc.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", svc.Name, tt.wantName)
			}
			if _, ok := svc.Schemas.Get(tt.schema); !ok {
				t.Errorf("schema %s missing", tt.schema)
			}
		})
	}
}

func TestLoad_ExplicitFormat(t *testing.T) {
	p := writeFile(t, "tasks.json", tasksJSON)
	if _, err := Load(context.Background(), p, Options{Format: FormatDiscovery}); err != nil {
		t.Errorf("discovery: %v", err)
	}
	if _, err := Load(context.Background(), p, Options{Format: "swagger"}); !discogen.IsCode(err, discogen.CodeInvalidArgument) {
		t.Errorf("unknown format: error = %v, want invalid_argument", err)
	}
	if _, err := Load(context.Background(), p, Options{Format: FormatRest}); !discogen.IsCode(err, discogen.CodeInvalidArgument) {
		t.Errorf("rest with a path: error = %v, want invalid_argument", err)
	}
}

func TestLoad_Rest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/discovery/v1/apis/tasks/v1/rest" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(tasksJSON))
	}))
	defer srv.Close()

	opts := Options{Endpoint: srv.URL + "/discovery/v1/"}
	services, err := LoadAll(context.Background(), []string{"tasks:v1"}, opts)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(services) != 1 || services[0].Name != "tasks" {
		t.Errorf("services = %+v", services)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"), Options{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestIsAPIRef(t *testing.T) {
	tests := map[string]bool{
		"plus:v1":         true,
		"cloudtasks:v2b3": true,
		"plus":            false,
		":v1":             false,
		"plus:":           false,
		"dir/plus:v1":     false,
		`C:\specs\a.json`: false,
		"a:b:c":           false,
	}
	for ref, want := range tests {
		if got := isAPIRef(ref); got != want {
			t.Errorf("isAPIRef(%q) = %v, want %v", ref, got, want)
		}
	}
}
