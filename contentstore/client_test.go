package contentstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/collections/testimonials/documents" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Content-Project"); got != "margdarshan" {
			t.Errorf("project header = %q", got)
		}

		q := r.URL.Query()
		if got := q.Get("eq"); got != "status:published" {
			t.Errorf("eq = %q, want status:published", got)
		}
		if got := q.Get("orderDesc"); got != "created_at" {
			t.Errorf("orderDesc = %q, want created_at", got)
		}
		if got := q.Get("limit"); got != "5" {
			t.Errorf("limit = %q, want 5", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"total": 2,
			"documents": []map[string]interface{}{
				{"name": "Ananya", "rating": 5},
				{"name": "Rohan", "rating": 4},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "margdarshan")
	list, err := c.ListDocuments(context.Background(), "testimonials", ListOptions{
		Equal:     map[string]string{"status": "published"},
		OrderDesc: "created_at",
		Limit:     5,
	})
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if list.Total != 2 || len(list.Documents) != 2 {
		t.Errorf("list = total %d, %d documents; want 2, 2", list.Total, len(list.Documents))
	}
}

func TestListDocumentsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "index rebuilding"})
	}))
	defer srv.Close()

	c := New(srv.URL, "margdarshan")
	_, err := c.ListDocuments(context.Background(), "faqs", ListOptions{})
	if err == nil {
		t.Fatal("ListDocuments succeeded on a 500 response")
	}
}

func TestListDocumentsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, "margdarshan")
	if _, err := c.ListDocuments(context.Background(), "faqs", ListOptions{}); err == nil {
		t.Fatal("ListDocuments succeeded against a closed server")
	}
}

func TestCreateDocument(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/collections/consultations/documents" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("content type = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "doc_789"})
	}))
	defer srv.Close()

	c := New(srv.URL, "margdarshan")
	id, err := c.CreateDocument(context.Background(), "consultations", map[string]interface{}{
		"name":  "Priya Nair",
		"email": "priya@example.com",
	})
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	if id != "doc_789" {
		t.Errorf("id = %q, want doc_789", id)
	}
	if received["email"] != "priya@example.com" {
		t.Errorf("stored document = %+v", received)
	}
}

func TestCreateDocumentRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "missing required field"})
	}))
	defer srv.Close()

	c := New(srv.URL, "margdarshan")
	if _, err := c.CreateDocument(context.Background(), "consultations", map[string]string{}); err == nil {
		t.Fatal("CreateDocument succeeded on a 422 response")
	}
}
