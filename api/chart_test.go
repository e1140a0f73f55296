package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-trends/api/mocks"
	"github.com/bitmark-inc/covid-trends/schema"
	"github.com/bitmark-inc/covid-trends/session"
)

func chartFixture() schema.ChartData {
	return schema.ChartData{
		UIState: schema.Selection{
			DataType:  schema.DataTypeConfirmed,
			Countries: []string{"Italy"},
			Window:    7,
		},
		Traces: []schema.Trace{
			{
				X:    schema.Values{100, 200},
				Y:    schema.Values{schema.Undefined(), 100},
				Name: "Italy",
				Mode: "lines",
				Type: "scatter",
			},
		},
		Cursor: schema.Cursor{Day: 2, MinDay: 2, MaxDay: 2, Date: "2020-03-14", DateLabel: "Mar 14"},
		Bounds: schema.AxisRanges{X: schema.AxisRange{0, 210}, Y: schema.AxisRange{-1, 105}},
	}
}

func newTestRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return s.setupRouter()
}

func TestChart(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}

	m.EXPECT().Render().Return(chartFixture()).Times(1)

	router := newTestRouter(&s)
	req := httptest.NewRequest("GET", "/api/chart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		UIState schema.Selection `json:"uistate"`
		Traces  []struct {
			X    []*float64 `json:"x"`
			Y    []*float64 `json:"y"`
			Name string     `json:"name"`
		} `json:"traces"`
		Cursor schema.Cursor `json:"cursor"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, []string{"Italy"}, jResp.UIState.Countries)
	assert.Len(t, jResp.Traces, 1)
	assert.Equal(t, "Italy", jResp.Traces[0].Name)
	assert.Nil(t, jResp.Traces[0].Y[0], "undefined point should be null")
	assert.Equal(t, 100.0, *jResp.Traces[0].Y[1])
	assert.Equal(t, "Mar 14", jResp.Cursor.DateLabel)
}

func TestSetDay(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}

	gomock.InOrder(
		m.EXPECT().SetDay(1).Times(1),
		m.EXPECT().Render().Return(chartFixture()).Times(1),
	)

	router := newTestRouter(&s)
	req := httptest.NewRequest("PATCH", "/api/chart/day", bytes.NewBufferString(`{"day":1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestSetDayInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}
	router := newTestRouter(&s)

	for body, code := range map[string]int64{
		`{}`:          1011,
		`{"day":"a"}`: 1011,
		`{"day":-1}`:  1103,
	} {
		req := httptest.NewRequest("PATCH", "/api/chart/day", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)

		var jResp ErrorResponse
		assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
		assert.Equal(t, code, jResp.Code, body)
	}
}

func TestSetRange(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}

	expected := schema.AxisRanges{
		X: schema.AxisRange{10, 1000},
		Y: schema.AxisRange{-1, 500},
	}
	data := chartFixture()
	data.UserRange = true

	m.EXPECT().SetUserRange(expected).Return(nil).Times(1)
	m.EXPECT().Render().Return(data).Times(1)

	router := newTestRouter(&s)
	req := httptest.NewRequest("PUT", "/api/chart/range", bytes.NewBufferString(`{"x":[10,1000],"y":[-1,500]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, true, jResp["user_range"])
}

func TestSetRangeInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}
	router := newTestRouter(&s)

	m.EXPECT().SetUserRange(gomock.Any()).Return(session.ErrInvalidRange).Times(1)

	for body, code := range map[string]int64{
		`{"x":[1],"y":[0,1]}`:   1011,
		`{"y":[0,1]}`:           1011,
		`{"x":[5,1],"y":[0,1]}`: 1102,
	} {
		req := httptest.NewRequest("PUT", "/api/chart/range", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)

		var jResp ErrorResponse
		assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
		assert.Equal(t, code, jResp.Code, body)
	}
}

func TestClearRange(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}

	gomock.InOrder(
		m.EXPECT().ClearUserRange().Times(1),
		m.EXPECT().Render().Return(chartFixture()).Times(1),
	)

	router := newTestRouter(&s)
	req := httptest.NewRequest("DELETE", "/api/chart/range", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestPanicReturnsInternalError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockChartSession(ctl)
	s := Server{session: m}

	m.EXPECT().Render().DoAndReturn(func() schema.ChartData {
		panic("broken render")
	}).Times(1)

	router := newTestRouter(&s)
	req := httptest.NewRequest("GET", "/api/chart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, int64(999), jResp.Code)
}
