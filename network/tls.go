package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const tlsTimeout = 15 * time.Second

var (
	tlsClient     *http.Client
	tlsClientOnce sync.Once
)

// TLSClient returns a client whose TLS handshake mimics Chrome 120.
//
// CORS relays sit behind CDNs that drop Go's default ClientHello, so relay
// probes go through this client. It always negotiates h2; relays that only
// speak HTTP/1.1 fail the probe, which is reported rather than retried.
func TLSClient() *http.Client {
	tlsClientOnce.Do(func() {
		tlsClient = &http.Client{
			Timeout: tlsTimeout,
			Transport: &userAgentTransport{base: &http2.Transport{
				DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
					return dialChrome(ctx, network, addr)
				},
			}},
		}
	})
	return tlsClient
}

func dialChrome(ctx context.Context, network, addr string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: tlsTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	uconn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}, utls.HelloChrome_120)

	if err := uconn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake with %s: %w", host, err)
	}

	if proto := uconn.ConnectionState().NegotiatedProtocol; proto != "h2" {
		_ = uconn.Close()
		return nil, fmt.Errorf("%s negotiated %q, want h2", host, proto)
	}

	return uconn, nil
}
