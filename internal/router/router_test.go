package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jba/hufftext/internal/handler"
	"github.com/jba/hufftext/internal/logger"
	"github.com/jba/hufftext/internal/service"
)

func newEngine(t *testing.T, maxBody int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, err := service.NewCompressor(logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { svc.Close() })
	r := gin.New()
	Register(r, Dependencies{CompressHandler: handler.NewCompressHandler(svc, maxBody)})
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := newEngine(t, 1<<20)
	if w := do(r, http.MethodGet, "/healthz", ""); w.Code != http.StatusOK {
		t.Errorf("status %d", w.Code)
	}
}

func TestEncodeDecode(t *testing.T) {
	r := newEngine(t, 1<<20)
	const text = "a man a plan a canal panama"
	enc := do(r, http.MethodPost, "/api/v1/encode", text)
	if enc.Code != http.StatusOK {
		t.Fatalf("encode: status %d: %s", enc.Code, enc.Body)
	}
	dec := do(r, http.MethodPost, "/api/v1/decode", enc.Body.String())
	if dec.Code != http.StatusOK {
		t.Fatalf("decode: status %d: %s", dec.Code, dec.Body)
	}
	if got := dec.Body.String(); got != text {
		t.Errorf("got %q, want %q", got, text)
	}
	if eh, dh := enc.Header().Get("X-Content-Xxhash"), dec.Header().Get("X-Content-Xxhash"); eh == "" || eh != dh {
		t.Errorf("digests %q and %q", eh, dh)
	}
}

func TestErrors(t *testing.T) {
	r := newEngine(t, 16)
	for _, test := range []struct {
		path, body string
		want       int
	}{
		{"/api/v1/decode", "a0x\n\n\n", http.StatusBadRequest},
		{"/api/v1/decode", "a0\n", http.StatusBadRequest},
		{"/api/v1/encode", "bad \xff", http.StatusBadRequest},
		{"/api/v1/encode", strings.Repeat("x", 17), http.StatusRequestEntityTooLarge},
	} {
		if w := do(r, http.MethodPost, test.path, test.body); w.Code != test.want {
			t.Errorf("%s %q: status %d, want %d", test.path, test.body, w.Code, test.want)
		}
	}
}

func TestTable(t *testing.T) {
	r := newEngine(t, 1<<20)
	w := do(r, http.MethodPost, "/api/v1/table", "aaab")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var got []struct{ Symbol, Code string }
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := []struct{ Symbol, Code string }{{"\n", "00"}, {"a", "1"}, {"b", "01"}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStat(t *testing.T) {
	r := newEngine(t, 1<<20)
	w := do(r, http.MethodPost, "/api/v1/stat", "aaab")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var st service.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatal(err)
	}
	if st.InputBytes != 4 || st.Symbols != 3 {
		t.Errorf("got %+v", st)
	}
}
