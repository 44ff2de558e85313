package verifier_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobboard-backend/pkg/verifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// test servers listen on loopback, so the SSRF guard is disabled here
// and covered separately below.
func newTestVerifier(opts ...verifier.Option) *verifier.Verifier {
	opts = append(opts, verifier.WithPrivateAddressesAllowed())
	return verifier.New(opts...)
}

func TestVerifyClassification(t *testing.T) {
	t.Run("success status is valid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		status, err := newTestVerifier().Verify(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, verifier.StatusValid, status)
	})

	t.Run("error status is invalid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		status, err := newTestVerifier().Verify(context.Background(), srv.URL)
		assert.Error(t, err)
		assert.Equal(t, verifier.StatusInvalid, status)
	})

	t.Run("HEAD rejection falls back to GET", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		status, err := newTestVerifier().Verify(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, verifier.StatusValid, status)
	})

	t.Run("timeout is unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		status, err := newTestVerifier(verifier.WithTimeout(20 * time.Millisecond)).
			Verify(context.Background(), srv.URL)
		assert.Error(t, err)
		assert.Equal(t, verifier.StatusUnreachable, status)
	})

	t.Run("connection refused is unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // closed before use

		status, _ := newTestVerifier().Verify(context.Background(), srv.URL)
		assert.Equal(t, verifier.StatusUnreachable, status)
	})

	t.Run("non-http schemes are invalid", func(t *testing.T) {
		status, err := newTestVerifier().Verify(context.Background(), "ftp://example.com/file")
		assert.Error(t, err)
		assert.Equal(t, verifier.StatusInvalid, status)
	})
}

func TestVerifyBlocksInternalAddresses(t *testing.T) {
	v := verifier.New(verifier.WithTimeout(time.Second))

	for _, raw := range []string{
		"http://localhost:8080/admin",
		"http://127.0.0.1/metrics",
		"http://10.0.0.5/internal",
		"http://192.168.1.1/router",
		"http://169.254.169.254/latest/meta-data/",
	} {
		status, err := v.Verify(context.Background(), raw)
		assert.Error(t, err, raw)
		assert.Equal(t, verifier.StatusInvalid, status, raw)
	}
}
