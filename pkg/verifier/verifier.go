// Package verifier probes external URLs referenced by portfolio items
// and classifies the outcome. It is deliberately outside the
// synchronous validation path: callers invoke it after a write has
// already been accepted and persist the classification as metadata.
package verifier

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Status is the tri-state classification of a probe.
type Status string

const (
	StatusValid       Status = "valid"       // reachable, success status
	StatusInvalid     Status = "invalid"     // reachable, error status
	StatusUnreachable Status = "unreachable" // network failure or timeout
)

// DefaultTimeout is the hard deadline for a single probe. A timed-out
// probe is reported as unreachable and is never retried here.
const DefaultTimeout = 8 * time.Second

// ErrForbiddenAddress marks URLs that resolve into address space the
// verifier refuses to probe. Without this check the verifier could be
// abused as an internal network scanner.
var ErrForbiddenAddress = errors.New("url resolves to a private or loopback address")

type Verifier struct {
	client       *http.Client
	timeout      time.Duration
	allowPrivate bool
}

type Option func(*Verifier)

// WithTimeout overrides the probe deadline.
func WithTimeout(d time.Duration) Option {
	return func(v *Verifier) { v.timeout = d }
}

// WithClient injects a custom HTTP client (tests).
func WithClient(c *http.Client) Option {
	return func(v *Verifier) { v.client = c }
}

// WithPrivateAddressesAllowed disables the SSRF guard. Test use only.
func WithPrivateAddressesAllowed() Option {
	return func(v *Verifier) { v.allowPrivate = true }
}

func New(opts ...Option) *Verifier {
	v := &Verifier{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(v)
	}
	if v.client == nil {
		v.client = &http.Client{
			// redirects are followed; the final status decides
			Timeout: v.timeout,
		}
	}
	return v
}

// Verify probes a single URL and classifies the result. The URL must
// already be structurally valid; malformed input is classified invalid.
// Forbidden addresses are rejected before any network traffic.
func (v *Verifier) Verify(ctx context.Context, rawURL string) (Status, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return StatusInvalid, fmt.Errorf("not a probeable http(s) url: %q", rawURL)
	}

	if !v.allowPrivate {
		if err := checkAddress(ctx, u.Hostname()); err != nil {
			return StatusInvalid, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return StatusInvalid, err
	}
	req.Header.Set("User-Agent", "jobboard-link-verifier/1.0")

	resp, err := v.client.Do(req)
	if err != nil {
		return StatusUnreachable, err
	}
	resp.Body.Close()

	// Some servers reject HEAD outright; retry those once with GET
	// before classifying. This is a method fallback, not a retry budget.
	if resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return StatusInvalid, err
		}
		req.Header.Set("User-Agent", "jobboard-link-verifier/1.0")
		resp, err = v.client.Do(req)
		if err != nil {
			return StatusUnreachable, err
		}
		resp.Body.Close()
	}

	if resp.StatusCode < 400 {
		return StatusValid, nil
	}
	return StatusInvalid, fmt.Errorf("url answered with status %d", resp.StatusCode)
}

// checkAddress resolves the host and rejects loopback, private,
// link-local and unspecified addresses.
func checkAddress(ctx context.Context, host string) error {
	if strings.EqualFold(host, "localhost") {
		return ErrForbiddenAddress
	}

	ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return fmt.Errorf("could not resolve host %q: %w", host, err)
	}

	for _, ip := range ips {
		if isForbiddenIP(ip.IP) {
			return ErrForbiddenAddress
		}
	}
	return nil
}

func isForbiddenIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}
