package requestcontext

import (
	"context"
	"net"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

type clientIPKey struct{}

type WithClientIPConfig struct {
	// TrustedHeader carries the client IP set by the edge proxy (X-Real-IP, CF-Connecting-IP).
	// It wins over X-Forwarded-For when it holds a valid IP.
	TrustedHeader string `mapstructure:"trusted_proxies_header"`

	// TrustedProxiesIP are the CIDR ranges of every proxy in front of the server. The client IP
	// is the last X-Forwarded-For entry outside of them.
	TrustedProxiesIP []string `mapstructure:"trusted_proxies_ip"`

	// RejectSpoofed answers 403 to proxied requests whose client IP can't be trusted.
	RejectSpoofed bool `mapstructure:"enable_reject_malformed_request"`
}

// WithClientIP resolves the client IP. Without trusted proxies the first X-Forwarded-For
// entry is used, unless RejectSpoofed is set.
func WithClientIP(config WithClientIPConfig) (Option, error) {
	trusted, err := parseCIDRs(config.TrustedProxiesIP)
	if err != nil {
		return nil, errors.Wrap(err, "invalid trusted proxies")
	}

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		if config.TrustedHeader != "" {
			if ip := net.ParseIP(c.Get(config.TrustedHeader)); ip != nil {
				return context.WithValue(ctx, clientIPKey{}, ip.String()), nil
			}
		}

		forwarded := c.IPs()
		if len(forwarded) == 0 {
			return context.WithValue(ctx, clientIPKey{}, c.IP()), nil
		}

		if len(trusted) > 0 {
			for i := len(forwarded) - 1; i >= 0; i-- {
				ip := net.ParseIP(forwarded[i])
				if ip != nil && !isTrusted(trusted, ip) {
					return context.WithValue(ctx, clientIPKey{}, ip.String()), nil
				}
			}
			return context.WithValue(ctx, clientIPKey{}, forwarded[0]), nil
		}

		if config.RejectSpoofed {
			logger.WarnContext(ctx, "untrusted X-Forwarded-For, rejecting request",
				slogx.String("event", "requestcontext/ip_spoofing_detected"),
				slogx.String("ip", c.IP()),
				slogx.Any("ips", forwarded),
			)
			return nil, rejectError{status: fiber.StatusForbidden, message: "not allowed to access"}
		}
		return context.WithValue(ctx, clientIPKey{}, forwarded[0]), nil
	}, nil
}

// GetClientIP returns the client IP set by WithClientIP, or "".
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}

func isTrusted(nets []*net.IPNet, ip net.IP) bool {
	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

func parseCIDRs(ranges []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(ranges))
	for _, r := range ranges {
		_, ipnet, err := net.ParseCIDR(r)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse CIDR %q", r)
		}
		nets = append(nets, ipnet)
	}
	return nets, nil
}
