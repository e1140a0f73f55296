package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-trends/api/mocks"
	"github.com/bitmark-inc/covid-trends/schema"
	"github.com/bitmark-inc/covid-trends/session"
)

func TestGetSelection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}

	requested := schema.Selection{
		DataType:  schema.DataTypeDeaths,
		Countries: []string{"Italy"},
		Window:    14,
	}
	m.EXPECT().Render().Return(chartFixture()).Times(1)
	m.EXPECT().Desired().Return(requested).Times(1)

	router := newTestRouter(&s)
	req := httptest.NewRequest("GET", "/api/selection", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]schema.Selection
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, requested, jResp["requested"])
	assert.Equal(t, schema.DataTypeConfirmed, jResp["applied"].DataType)
}

func TestUpdateSelectionWait(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}

	expected := schema.Selection{
		DataType:  schema.DataTypeConfirmed,
		Countries: []string{"Italy", "France"},
		Window:    7,
		Normalize: true,
	}
	gomock.InOrder(
		m.EXPECT().Select(gomock.Any(), expected).Return(nil).Times(1),
		m.EXPECT().Render().Return(chartFixture()).Times(1),
	)

	router := newTestRouter(&s)
	body := `{"data_type":"confirmed","countries":["Italy","France"],"window":7,"normalize":true}`
	req := httptest.NewRequest("PUT", "/api/selection?wait=1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateSelectionFetchFailureKeepsRendering(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}

	m.EXPECT().Select(gomock.Any(), gomock.Any()).Return(fmt.Errorf("connection refused")).Times(1)
	m.EXPECT().Render().Return(chartFixture()).Times(1)

	router := newTestRouter(&s)
	body := `{"data_type":"deaths","window":14}`
	req := httptest.NewRequest("PUT", "/api/selection?wait=true", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateSelectionAsync(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m, fetchTimeout: time.Second}

	done := make(chan struct{})
	m.EXPECT().Select(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, sel schema.Selection) error {
			defer close(done)
			assert.Equal(t, []string{}, sel.Countries)
			return session.ErrStaleFetch
		}).Times(1)

	router := newTestRouter(&s)
	body := `{"data_type":"deaths","window":7}`
	req := httptest.NewRequest("PUT", "/api/selection", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code, "wrong status code")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("background select was not run")
	}
}

func TestUpdateSelectionInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}
	router := newTestRouter(&s)

	for body, code := range map[string]int64{
		`not json`:                                1011,
		`{"window":7}`:                            1011,
		`{"data_type":"recovered","window":7}`:    1100,
		`{"data_type":"confirmed","window":3}`:    1101,
		`{"data_type":"confirmed","window":"14"}`: 1011,
	} {
		req := httptest.NewRequest("PUT", "/api/selection?wait=1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)

		var jResp ErrorResponse
		assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
		assert.Equal(t, code, jResp.Code, body)
	}
}

func TestRefreshWait(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}

	gomock.InOrder(
		m.EXPECT().Refresh(gomock.Any()).Return(nil).Times(1),
		m.EXPECT().Status().Return(session.Status{
			DataType:  schema.DataTypeConfirmed,
			DatasetID: "abc",
			Seq:       2,
			Started:   2,
		}).Times(1),
	)

	router := newTestRouter(&s)
	req := httptest.NewRequest("POST", "/api/dataset/refresh?wait=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp session.Status
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, "abc", jResp.DatasetID)
	assert.Equal(t, uint64(2), jResp.Seq)
	assert.False(t, jResp.Pending)
}

func TestStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}

	m.EXPECT().Status().Return(session.Status{
		DataType:  schema.DataTypeDeaths,
		Seq:       1,
		Started:   2,
		Pending:   true,
		LastError: "unexpected response status: 404",
	}).Times(1)

	router := newTestRouter(&s)
	req := httptest.NewRequest("GET", "/api/dataset/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, true, jResp["pending"])
	assert.Equal(t, "unexpected response status: 404", jResp["last_error"])
}

func TestCountries(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}

	countries := []session.Country{
		{Name: "France", MaxCases: 900, Selected: true},
		{Name: "Italy", MaxCases: 1801, Selected: false},
	}
	m.EXPECT().Countries().Return(countries).Times(1)

	router := newTestRouter(&s)
	req := httptest.NewRequest("GET", "/api/dataset/countries", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]session.Country
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, countries, jResp["countries"])
}
