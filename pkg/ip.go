package pkg

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// LocalClient is the rate limit key shared by every loopback or docker bridge caller.
const LocalClient = "localhost"

// docker's default bridge networks live in 172.16.0.0/12
var dockerBridges = netip.MustParsePrefix("172.16.0.0/12")

// ClientIP returns the caller address, trusting X-Real-Ip, then the first
// X-Forwarded-For hop, then the socket address. Local callers collapse into
// LocalClient.
func ClientIP(r *http.Request) (string, error) {
	raw := r.Header.Get("X-Real-Ip")
	if raw == "" {
		raw, _, _ = strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		raw = strings.TrimSpace(raw)
	}
	if raw == "" {
		raw = r.RemoteAddr
	}
	if host, _, err := net.SplitHostPort(raw); err == nil {
		raw = host
	}

	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return "", fmt.Errorf("client ip %q: %w", raw, err)
	}
	addr = addr.Unmap()
	if addr.IsLoopback() || dockerBridges.Contains(addr) {
		return LocalClient, nil
	}
	return addr.String(), nil
}
