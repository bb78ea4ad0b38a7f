package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	logger := zerolog.Nop()
	s, err := server.New(config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)

	repos := repository.NewRepositories(s)
	services := service.NewServices(s, repos)
	return NewRouter(s, handler.NewHandlers(s, services))
}

func do(t *testing.T, r *echo.Echo, method, target, body string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if mutate != nil {
		mutate(req)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRoutes(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		mutate func(*http.Request)
		want   string
	}{
		{
			name:   "root",
			method: http.MethodGet,
			target: "/",
			want:   `{"message":"Hello World"}`,
		},
		{
			name:   "hello",
			method: http.MethodGet,
			target: "/hello/Ada",
			want:   `{"message":"Hello Ada"}`,
		},
		{
			name:   "model alexnet",
			method: http.MethodGet,
			target: "/models/alexnet",
			want:   `{"model_name":"alexnet","message":"Deep Learning FTW!"}`,
		},
		{
			name:   "model lenet",
			method: http.MethodGet,
			target: "/models/lenet",
			want:   `{"model_name":"lenet","message":"LeCNN all the images"}`,
		},
		{
			name:   "model resnet",
			method: http.MethodGet,
			target: "/models/resnet",
			want:   `{"model_name":"resnet","message":"Have some residuals"}`,
		},
		{
			name:   "read item",
			method: http.MethodGet,
			target: "/items/foo?q=bar",
			want:   `{"item_id":"foo","q":"bar","description":"This is an amazing item that has a long description"}`,
		},
		{
			name:   "read item short",
			method: http.MethodGet,
			target: "/items/foo?short=true",
			want:   `{"item_id":"foo"}`,
		},
		{
			name:   "read item short yes",
			method: http.MethodGet,
			target: "/items/foo?short=yes",
			want:   `{"item_id":"foo"}`,
		},
		{
			name:   "read item short on",
			method: http.MethodGet,
			target: "/items/foo?short=ON",
			want:   `{"item_id":"foo"}`,
		},
		{
			name:   "read item short off",
			method: http.MethodGet,
			target: "/items/foo?short=off",
			want:   `{"item_id":"foo","description":"This is an amazing item that has a long description"}`,
		},
		{
			name:   "read item short no",
			method: http.MethodGet,
			target: "/items/foo?short=no",
			want:   `{"item_id":"foo","description":"This is an amazing item that has a long description"}`,
		},
		{
			name:   "create item tiny positive price",
			method: http.MethodPost,
			target: "/items/",
			body:   `{"name":"Foo","price":1e-40}`,
			want:   `{"name":"Foo","description":null,"price":1e-40,"tax":null,"tags":[],"images":null}`,
		},
		{
			name:   "create item fills defaults",
			method: http.MethodPost,
			target: "/items/",
			body:   `{"name":"Foo","price":1.0}`,
			want:   `{"name":"Foo","description":null,"price":1.0,"tax":null,"tags":[],"images":null}`,
		},
		{
			name:   "create item dedupes tags",
			method: http.MethodPost,
			target: "/items",
			body:   `{"name":"Foo","price":2.5,"tax":0.5,"tags":["a","b","a"]}`,
			want:   `{"name":"Foo","description":null,"price":2.5,"tax":0.5,"tags":["a","b"],"images":null}`,
		},
		{
			name:   "update item flat",
			method: http.MethodPut,
			target: "/items/7?query=x",
			body:   `{"name":"Foo","price":2}`,
			want:   `{"item_id":7,"name":"Foo","description":null,"price":2,"tax":null,"tags":[],"images":null,"query":"x"}`,
		},
		{
			name:   "list items",
			method: http.MethodGet,
			target: "/items/",
			want:   `{"items":[{"item_id":"foo"},{"item_id":"bar"}]}`,
		},
		{
			name:   "list items with q",
			method: http.MethodGet,
			target: "/items?q=abc",
			want:   `{"items":[{"item_id":"foo"},{"item_id":"bar"}],"q":"abc"}`,
		},
		{
			name:   "bounded item",
			method: http.MethodGet,
			target: "/v2/items/5",
			want:   `{"item_id":5}`,
		},
		{
			name:   "bounded item with query",
			method: http.MethodGet,
			target: "/v2/items/1000?item-query=abc",
			want:   `{"item_id":1000,"q":"abc"}`,
		},
		{
			name:   "create item v2",
			method: http.MethodPost,
			target: "/v2/items/",
			body:   `{"name":"Foo","price":1}`,
			want:   `{"name":"Foo","description":null,"price":1,"tax":null,"tags":[],"images":null}`,
		},
		{
			name:   "update embedded item",
			method: http.MethodPut,
			target: "/v2/items/3",
			body:   `{"item":{"name":"Foo","price":2,"images":[{"url":"https://example.com/a.png","name":"A"}]}}`,
			want:   `{"item_id":3,"item":{"name":"Foo","description":null,"price":2,"tax":null,"tags":[],"images":[{"url":"https://example.com/a.png","name":"A"}]}}`,
		},
		{
			name:   "tagged list default",
			method: http.MethodGet,
			target: "/v2/items/",
			want:   `{"items":[{"item_id":"foo"},{"item_id":"bar"}],"q":["foo","bar"]}`,
		},
		{
			name:   "tagged list repeated q",
			method: http.MethodGet,
			target: "/v2/items?q=a&q=b&q=c",
			want:   `{"items":[{"item_id":"foo"},{"item_id":"bar"}],"q":["a","b","c"]}`,
		},
		{
			name:   "multiple images",
			method: http.MethodPost,
			target: "/v2/images/multiple/",
			body:   `[{"url":"https://example.com/a.png","name":"A"},{"url":"https://example.com/b.png","name":"B"}]`,
			want:   `[{"url":"https://example.com/a.png","name":"A"},{"url":"https://example.com/b.png","name":"B"}]`,
		},
		{
			name:   "offer",
			method: http.MethodPost,
			target: "/v2/offers/",
			body:   `{"name":"Pack","price":10,"items":[{"name":"Foo","price":1,"tags":["x","x"]}]}`,
			want:   `{"name":"Pack","description":null,"price":10,"items":[{"name":"Foo","description":null,"price":1,"tax":null,"tags":["x"],"images":null}]}`,
		},
		{
			name:   "cookie present",
			method: http.MethodGet,
			target: "/v2/cookies/",
			mutate: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "ads_id", Value: "abc"})
			},
			want: `{"ads_id":"abc"}`,
		},
		{
			name:   "cookie absent",
			method: http.MethodGet,
			target: "/v2/cookies",
			want:   `{"ads_id":null}`,
		},
		{
			name:   "user agent",
			method: http.MethodGet,
			target: "/v2/headers/",
			mutate: func(req *http.Request) {
				req.Header.Set("User-Agent", "tester/1.0")
			},
			want: `{"User-Agent":"tester/1.0"}`,
		},
		{
			name:   "user agent absent",
			method: http.MethodGet,
			target: "/v2/headers",
			want:   `{"User-Agent":null}`,
		},
		{
			name:   "multiple tokens",
			method: http.MethodGet,
			target: "/v2/headers/multi/",
			mutate: func(req *http.Request) {
				req.Header.Add("X-Token", "foo")
				req.Header.Add("X-Token", "bar")
			},
			want: `{"X-Token values":["foo","bar"]}`,
		},
		{
			name:   "no tokens",
			method: http.MethodGet,
			target: "/v2/headers/multi",
			want:   `{"X-Token values":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, tt.method, tt.target, tt.body, tt.mutate)

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestRoutesRejectInvalidInput(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		wantField string
	}{
		{name: "unknown model", method: http.MethodGet, target: "/models/vgg", wantField: "model_name"},
		{name: "zero price", method: http.MethodPost, target: "/items/", body: `{"name":"Foo","price":0}`, wantField: "price"},
		{name: "negative price", method: http.MethodPost, target: "/v2/items/", body: `{"name":"Foo","price":-1}`, wantField: "price"},
		{name: "missing name", method: http.MethodPost, target: "/items/", body: `{"price":1}`, wantField: "name"},
		{name: "price above ceiling", method: http.MethodPost, target: "/items/", body: `{"name":"Foo","price":1e10}`, wantField: "price"},
		{name: "tax huge exponent", method: http.MethodPost, target: "/items/", body: `{"name":"Foo","price":1,"tax":1e100000}`, wantField: "tax"},
		{name: "offer huge exponent", method: http.MethodPost, target: "/v2/offers/", body: `{"name":"Pack","price":1e10000000,"items":[]}`, wantField: "price"},
		{name: "bad short flag", method: http.MethodGet, target: "/items/foo?short=maybe", wantField: "short"},
		{name: "non numeric update id", method: http.MethodPut, target: "/items/abc", body: `{"name":"Foo","price":1}`, wantField: "item_id"},
		{name: "non numeric bounded id", method: http.MethodGet, target: "/v2/items/abc", wantField: "item_id"},
		{name: "wrong body type", method: http.MethodPost, target: "/items/", body: `{"name":["Foo"],"price":1}`, wantField: "name"},
		{name: "name too long", method: http.MethodPost, target: "/items/", body: `{"name":"` + strings.Repeat("x", 51) + `","price":1}`, wantField: "name"},
		{name: "list query too long", method: http.MethodGet, target: "/items/?q=" + strings.Repeat("x", 51), wantField: "q"},
		{name: "bounded id above ceiling", method: http.MethodGet, target: "/v2/items/1500", wantField: "item_id"},
		{name: "bounded id zero", method: http.MethodGet, target: "/v2/items/0", wantField: "item_id"},
		{name: "embedded item missing", method: http.MethodPut, target: "/v2/items/3", body: `{"name":"Foo","price":1}`, wantField: "item"},
		{name: "flat update bad price", method: http.MethodPut, target: "/items/3", body: `{"name":"Foo","price":0}`, wantField: "price"},
		{name: "image bad url", method: http.MethodPost, target: "/v2/images/multiple/", body: `[{"url":"not-a-url","name":"A"}]`, wantField: "images[0].url"},
		{name: "offer bad nested price", method: http.MethodPost, target: "/v2/offers/", body: `{"name":"Pack","price":1,"items":[{"name":"Foo","price":0}]}`, wantField: "items[0].price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, tt.method, tt.target, tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			body := decodeError(t, rec)
			assert.Equal(t, "BAD_REQUEST", body.Code)
			require.NotEmpty(t, body.Errors)
			assert.Equal(t, tt.wantField, body.Errors[0].Field)
		})
	}
}

func TestRoutesRejectMalformedInput(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "malformed json", method: http.MethodPost, target: "/items/", body: `{"name":`},
		{name: "price not a number", method: http.MethodPost, target: "/items/", body: `{"name":"Foo","price":"abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, tt.method, tt.target, tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, "BAD_REQUEST", decodeError(t, rec).Code)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
}

func TestSystemRoutes(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/status", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	rec = do(t, r, http.MethodGet, "/docs", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "/static/openapi.json")

	rec = do(t, r, http.MethodGet, "/static/openapi.json", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/", "", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHugeExponentRejectedQuickly(t *testing.T) {
	r := newTestRouter(t)

	for _, price := range []string{"1e10000000", "1e-10000000", "-1e2000000000"} {
		t.Run(price, func(t *testing.T) {
			start := time.Now()
			rec := do(t, r, http.MethodPost, "/items/", `{"name":"Foo","price":`+price+`}`, nil)

			assert.Less(t, time.Since(start), time.Second)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Less(t, rec.Body.Len(), 1024)

			body := decodeError(t, rec)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, "price", body.Errors[0].Field)
		})
	}
}
