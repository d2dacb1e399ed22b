// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/rpc/fixtures"
	"github.com/bitmark-inc/kevad/rpc/handler"
	"github.com/bitmark-inc/logger"
)

// httptest requests originate from this address
const testRemote = "192.0.2.1/32"

type errorBody struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type LookupArguments struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
}

type LookupReply struct {
	Value  string `json:"value"`
	Height int64  `json:"height"`
}

// minimal stand in for the keva RPC service
type Lookup struct{}

func (Lookup) Get(arguments *LookupArguments, reply *LookupReply) error {
	if "" == arguments.Key {
		return fault.MissingParameters
	}
	reply.Value = arguments.Namespace + "/" + arguments.Key
	reply.Height = 7
	return nil
}

func newHandler(maximumConnections uint64, details handler.DetailsFunc) handler.Handler {
	s := rpc.NewServer()
	_ = s.Register(Lookup{})

	return handler.New(
		logger.New(fixtures.LogCategory),
		s,
		time.Now(),
		"0.1",
		maximumConnections,
		details,
	)
}

func allowTestRemote(h handler.Handler, path string) {
	_, n, _ := net.ParseCIDR(testRemote)
	h.SetAllow(map[string][]*net.IPNet{
		path: {n},
	})
}

func call(t *testing.T, h handler.Handler, method string, params interface{}) *http.Response {
	request := map[string]interface{}{
		"id":     3,
		"method": method,
		"params": []interface{}{params},
	}
	data, err := json.Marshal(request)
	assert.Nil(t, err, "marshal request")

	w := httptest.NewRecorder()
	h.RPC(w, httptest.NewRequest(http.MethodPost, "/kevad/rpc", bytes.NewReader(data)))
	return w.Result()
}

func decodeError(t *testing.T, resp *http.Response) errorBody {
	var e errorBody
	err := json.NewDecoder(resp.Body).Decode(&e)
	assert.Nil(t, err, "decode error body")
	return e
}

func TestRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, nil)

	resp := call(t, h, "Lookup.Get", LookupArguments{Namespace: "NNs", Key: "k"})
	assert.Equal(t, http.StatusOK, resp.StatusCode, "status")
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"), "content type")

	var reply struct {
		ID     int         `json:"id"`
		Result LookupReply `json:"result"`
		Error  interface{} `json:"error"`
	}
	err := json.NewDecoder(resp.Body).Decode(&reply)
	assert.Nil(t, err, "decode reply")
	assert.Equal(t, 3, reply.ID, "id")
	assert.Equal(t, "NNs/k", reply.Result.Value, "value")
	assert.Equal(t, int64(7), reply.Result.Height, "height")
	assert.Nil(t, reply.Error, "error")
}

func TestRPCServiceError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, nil)

	resp := call(t, h, "Lookup.Get", LookupArguments{Namespace: "NNs"})
	assert.Equal(t, http.StatusOK, resp.StatusCode, "errors travel in the JSON reply")

	var reply struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&reply)
	assert.Equal(t, fault.MissingParameters.Error(), reply.Error, "service error")
}

func TestRPCRejections(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	tests := []struct {
		name        string
		method      string
		body        []byte
		connections uint64
		status      int
		message     string
	}{
		{
			name:        "wrong method",
			method:      http.MethodGet,
			connections: 5,
			status:      http.StatusMethodNotAllowed,
			message:     "method not allowed",
		},
		{
			name:        "connection limit",
			method:      http.MethodPost,
			body:        []byte("{}"),
			connections: 0,
			status:      http.StatusTooManyRequests,
			message:     http.StatusText(http.StatusTooManyRequests),
		},
		{
			name:        "malformed request",
			method:      http.MethodPost,
			body:        []byte("{"),
			connections: 5,
			status:      http.StatusInternalServerError,
			message:     "internal server error",
		},
	}

	for _, item := range tests {
		h := newHandler(item.connections, nil)

		w := httptest.NewRecorder()
		h.RPC(w, httptest.NewRequest(item.method, "/kevad/rpc", bytes.NewReader(item.body)))

		resp := w.Result()
		assert.Equal(t, item.status, resp.StatusCode, item.name)
		assert.Equal(t, item.message, decodeError(t, resp).Error, item.name)
	}
}

func TestRoot(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, nil)

	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest(http.MethodGet, "/anything", nil))

	resp := w.Result()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "status")
	assert.Equal(t, "not found", decodeError(t, resp).Error, "message")
}

func TestDetails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(5, func() (interface{}, error) {
		return map[string]uint64{"height": 12}, nil
	})
	allowTestRemote(h, "details")

	w := httptest.NewRecorder()
	h.Details(w, httptest.NewRequest(http.MethodGet, "/kevad/details", nil))

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "status")

	var reply struct {
		Version string            `json:"version"`
		Uptime  string            `json:"uptime"`
		Node    map[string]uint64 `json:"node"`
	}
	err := json.NewDecoder(resp.Body).Decode(&reply)
	assert.Nil(t, err, "decode")
	assert.Equal(t, "0.1", reply.Version, "version")
	assert.NotEmpty(t, reply.Uptime, "uptime")
	assert.Equal(t, uint64(12), reply.Node["height"], "node details")
}

func TestDetailsRejections(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	failing := func() (interface{}, error) {
		return nil, fault.DatabaseIsNotSet
	}

	tests := []struct {
		name        string
		method      string
		allow       bool
		connections uint64
		details     handler.DetailsFunc
		status      int
	}{
		{"wrong method", http.MethodPost, true, 5, nil, http.StatusMethodNotAllowed},
		{"not allowed", http.MethodGet, false, 5, nil, http.StatusForbidden},
		{"connection limit", http.MethodGet, true, 0, nil, http.StatusTooManyRequests},
		{"details error", http.MethodGet, true, 5, failing, http.StatusInternalServerError},
	}

	for _, item := range tests {
		h := newHandler(item.connections, item.details)
		if item.allow {
			allowTestRemote(h, "details")
		}

		w := httptest.NewRecorder()
		h.Details(w, httptest.NewRequest(item.method, "/kevad/details", nil))

		assert.Equal(t, item.status, w.Result().StatusCode, item.name)
	}
}
