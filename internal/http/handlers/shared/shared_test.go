package shared

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/service"

	"github.com/gin-gonic/gin"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	return body
}

func TestGetSessionIDMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if _, ok := GetSessionID(c); ok {
		t.Fatalf("missing session should fail")
	}
	if body := decodeBody(t, w); body["status_code"].(float64) != 401 {
		t.Fatalf("want 401 got %v", body["status_code"])
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Set(constants.SessionIDKey, "abc")
	if id, ok := GetSessionID(c); !ok || id != "abc" {
		t.Fatalf("want abc got %s", id)
	}
}

func TestRespondMappedErrorAddsField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	err := &service.ValidationError{Field: "zip_code", Err: service.ErrShippingInfoInvalid}
	RespondMappedError(c, 400, "error.shipping_info_invalid", err)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	if data["field"] != "zip_code" {
		t.Fatalf("want field zip_code got %v", data)
	}
}

func TestPageBounds(t *testing.T) {
	cases := []struct{ total, page, size, start, end int }{
		{10, 1, 20, 0, 10},
		{45, 2, 20, 20, 40},
		{45, 3, 20, 40, 45},
		{45, 9, 20, 45, 45},
	}
	for _, tc := range cases {
		start, end := PageBounds(tc.total, tc.page, tc.size)
		if start != tc.start || end != tc.end {
			t.Fatalf("bounds(%d,%d,%d) want %d-%d got %d-%d", tc.total, tc.page, tc.size, tc.start, tc.end, start, end)
		}
	}
	if page, size := NormalizePagination(0, 500); page != 1 || size != 100 {
		t.Fatalf("unexpected normalization %d %d", page, size)
	}
}
