package blockchain

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"

	"github.com/trebuchet-org/courier/internal/domain"
)

// DefaultRequestTimeout bounds a single RPC round trip. Confirmation waits
// are made of many round trips and have no overall bound.
const DefaultRequestTimeout = 60 * time.Second

// ParseProxy normalizes a proxy endpoint. A bare host:port is treated as
// an HTTP proxy and socks:// as socks5://.
func ParseProxy(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidProxy, err)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme == "socks" {
		u.Scheme = "socks5"
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host in %s", domain.ErrInvalidProxy, u.Redacted())
	}

	switch u.Scheme {
	case "http", "https", "socks5", "socks5h":
		return u, nil
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", domain.ErrInvalidProxy, u.Scheme)
	}
}

// NewHTTPClient builds the HTTP client RPC traffic goes through. An empty
// proxy means a direct connection; SOCKS endpoints dial through
// golang.org/x/net/proxy and HTTP(S) endpoints use CONNECT proxying.
func NewHTTPClient(proxyURL string, timeout time.Duration) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if proxyURL != "" {
		u, err := ParseProxy(proxyURL)
		if err != nil {
			return nil, err
		}

		switch u.Scheme {
		case "http", "https":
			transport.Proxy = http.ProxyURL(u)
		default:
			dialer, err := proxy.FromURL(u, proxy.Direct)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrInvalidProxy, err)
			}
			transport.Proxy = nil
			transport.DialContext = contextDialer(dialer)
		}
	}

	return &http.Client{Transport: transport, Timeout: timeout}, nil
}

func contextDialer(d proxy.Dialer) func(ctx context.Context, network, addr string) (net.Conn, error) {
	if cd, ok := d.(proxy.ContextDialer); ok {
		return cd.DialContext
	}
	return func(_ context.Context, network, addr string) (net.Conn, error) {
		return d.Dial(network, addr)
	}
}
