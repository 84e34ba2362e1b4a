package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	server "github.com/lakecity-club/clubstate/pkg/controller/http"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/store"
	"github.com/lakecity-club/clubstate/pkg/store/app"
	"github.com/lakecity-club/clubstate/pkg/store/articles"
	"github.com/lakecity-club/clubstate/pkg/store/intent"
)

func TestHealthz(t *testing.T) {
	srv := server.New(store.New(store.NewState()))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/healthz", nil))

	gt.Value(t, rec.Code).Equal(nethttp.StatusOK)
	gt.Value(t, rec.Header().Get("Content-Type")).Equal("application/json")
}

func TestStateServesSliceKeys(t *testing.T) {
	st := store.New(store.NewState())
	st.Dispatch(articles.FetchHomeSucceeded{
		Articles:   []model.Article{{ID: "a1", Title: "hello"}},
		TotalCount: 1,
	})
	srv := server.New(st)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/api/state/", nil))

	gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

	var body map[string]json.RawMessage
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)).Required()
	for _, key := range []string{"appState", "articlesState", "authState", "eventsState", "imagesState", "membersState"} {
		if _, ok := body[key]; !ok {
			t.Errorf("state response is missing %s", key)
		}
	}

	var articlesState articles.State
	gt.NoError(t, json.Unmarshal(body["articlesState"], &articlesState)).Required()
	gt.Value(t, articlesState.TotalCount).Equal(1)
}

func TestLoadingReflectsForegroundLoads(t *testing.T) {
	st := store.New(store.NewState())
	srv := server.New(st)

	read := func() bool {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/api/state/loading", nil))
		gt.Value(t, rec.Code).Equal(nethttp.StatusOK)

		var body map[string]bool
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)).Required()
		return body["isLoading"]
	}

	gt.Bool(t, read()).False()
	st.Dispatch(articles.FetchHomeRequested{})
	gt.Bool(t, read()).True()
}

func TestRefreshDispatchesAppRefresh(t *testing.T) {
	st := store.New(store.NewState())
	srv := server.New(st)

	var refreshed bool
	st.Subscribe(func(in intent.Intent, _ store.State) {
		if _, ok := in.(app.RefreshRequested); ok {
			refreshed = true
		}
	})

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodPost, "/api/refresh", nil))

	gt.Value(t, rec.Code).Equal(nethttp.StatusAccepted)
	gt.Bool(t, refreshed).True()
}
