package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/blueline-rp/mdt-bot/mdt"
	"github.com/blueline-rp/mdt-bot/sheets"
	mockssheets "github.com/blueline-rp/mdt-bot/sheets/mocks"
)

var a App

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func TestUnknownRoute(t *testing.T) {
	a.Ref = mdt.NewReference(nil)
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/asdf", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusNotFound, response.Code)
}

func TestHealthCheckRoute(t *testing.T) {
	a.Ref = mdt.NewReference(nil)
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "alive") {
		t.Errorf("Expected 'alive' in the reponse. Got '%s'", response.Body.String())
	}
}

func TestRootKeepAliveRoute(t *testing.T) {
	a.Ref = mdt.NewReference(nil)
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)
}

func TestPenaltiesRouteBeforeFirstLoad(t *testing.T) {
	a.Ref = mdt.NewReference(nil)
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/api/v1/penalties", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusServiceUnavailable, response.Code)
}

func TestPenaltiesRoute(t *testing.T) {
	values := &mockssheets.ValuesHelper{}
	values.On("ReadRows", mock.Anything, "Penalty Codes!A2:E").Return([][]string{
		{"101", "Speeding", "", "10", "200"},
	}, nil)
	ref := mdt.NewReference(sheets.NewPenaltyDatabase(values))
	if err := ref.Refresh(context.Background()); err != nil {
		t.Fatalf("Expected reference to load. Got '%v'", err)
	}

	a.Ref = ref
	a.Router = a.New()
	req, _ := http.NewRequest("GET", "/api/v1/penalties", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "Speeding") {
		t.Errorf("Expected 'Speeding' in the reponse. Got '%s'", response.Body.String())
	}
}
