package home

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

func TestHandler(t *testing.T) {
	handler := NewHandler("Hello", "Someone")

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	var body Response
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Hello", body.WelcomeMessage; e != g {
		t.Errorf("body.WelcomeMessage: expected '%s', got '%s'", e, g)
	}

	if e, g := "Someone", body.Author; e != g {
		t.Errorf("body.Author: expected '%s', got '%s'", e, g)
	}

	notFound := httptest.NewRecorder()
	handler.ServeHTTP(notFound, httptest.NewRequest(http.MethodGet, "/unknown", nil))

	if e, g := http.StatusNotFound, notFound.Code; e != g {
		t.Errorf("notFound.Code: expected %d, got %d", e, g)
	}
}
