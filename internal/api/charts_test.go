// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"astrograph/internal/config"
	"astrograph/internal/plotspec"
	"astrograph/internal/table"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const comets = `Time,Dust_Temp,Ice_Temp,Dust_Temp_sigup,Dust_Temp_sigdown
1,10.5,3.2,0.5,0.4
2,11.0,3.6,0.6,0.5
3,11.8,3.9,0.4,0.3
`

func testLoader(t *testing.T) Loader {
	t.Helper()
	return func() (*config.Config, *plotspec.PlotSpec, error) {
		cfg, err := config.Resolve(config.Layer{
			File:             config.Some("comets.csv"),
			XAxis:            config.Some("Time"),
			YAxes:            config.Some([]string{"Dust_Temp", "Ice_Temp"}),
			UseUncertainties: config.Some(true),
			DPI:              config.Some(40),
		}, "")
		if err != nil {
			return nil, nil, err
		}
		tbl, err := table.Read(strings.NewReader(comets), ',')
		if err != nil {
			return nil, nil, err
		}
		spec, err := plotspec.Build(cfg, tbl)
		return cfg, spec, err
	}
}

func serve(t *testing.T, load Loader, path string) *httptest.ResponseRecorder {
	t.Helper()
	router := mux.NewRouter()
	RegisterChartRoutes(router, load)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestChartPage(t *testing.T) {
	rec := serve(t, testLoader(t), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
	assert.Contains(t, rec.Body.String(), `"name":"Dust_Temp"`)
}

func TestChartImages(t *testing.T) {
	rec := serve(t, testLoader(t), "/chart.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))

	rec = serve(t, testLoader(t), "/chart.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<svg")

	rec = serve(t, testLoader(t), "/chart.bmp")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "bmp")
}

func TestSpecEndpoint(t *testing.T) {
	rec := serve(t, testLoader(t), "/api/spec")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var spec plotspec.PlotSpec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	require.Len(t, spec.Series, 2)
	assert.True(t, spec.Series[0].HasErrorBars())
	assert.False(t, spec.Series[1].HasErrorBars())
	assert.Equal(t, "Value", spec.Layout.YTitle)
}

func TestConfigEndpoint(t *testing.T) {
	rec := serve(t, testLoader(t), "/api/config")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "x_axis: Time")
	assert.Contains(t, rec.Body.String(), "use_uncertainties: true")
}

func TestLoaderErrors(t *testing.T) {
	failing := func() (*config.Config, *plotspec.PlotSpec, error) {
		return nil, nil, errors.New("data file vanished")
	}
	for _, path := range []string{"/", "/chart.png", "/api/spec", "/api/config"} {
		rec := serve(t, failing, path)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), path)
		assert.Equal(t, "data file vanished", body["error"])
	}
}
