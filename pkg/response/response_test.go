package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, map[string]string{"title": "Jazz Night"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if env.Suc != "ok" {
		t.Errorf("suc = %q, want ok", env.Suc)
	}
	if env.Msg != "" {
		t.Errorf("msg = %q, want empty", env.Msg)
	}
}

func TestCreated(t *testing.T) {
	w := record(func(c *gin.Context) {
		Created(c, map[string]string{"id": "abc"})
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
}

func TestOKMsgOmitsData(t *testing.T) {
	w := record(func(c *gin.Context) {
		OKMsg(c, "Event deleted successfully")
	})

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if _, ok := raw["data"]; ok {
		t.Error("data key present, want omitted")
	}
	if string(raw["msg"]) != `"Event deleted successfully"` {
		t.Errorf("msg = %s", raw["msg"])
	}
}

func TestFail(t *testing.T) {
	w := record(func(c *gin.Context) {
		Fail(c, http.StatusNotFound, "Event not found")
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if env.Suc != "not ok" {
		t.Errorf("suc = %q, want not ok", env.Suc)
	}
	if env.Msg != "Event not found" {
		t.Errorf("msg = %q, want Event not found", env.Msg)
	}
}
