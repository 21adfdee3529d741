package nets

import (
	"context"
	"net"
	"time"

	"github.com/reusee/bytetape/logs"
)

const dialTimeout = 30 * time.Second

type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

type DialerFunc func(ctx context.Context, network, addr string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

func (d DialerFunc) Dial(network, addr string) (net.Conn, error) {
	return d(context.Background(), network, addr)
}

func (Module) Dialer(
	getProxyDialer GetProxyDialer,
	isLocalAddr IsLocalAddr,
	logger logs.Logger,
) Dialer {
	direct := &net.Dialer{
		Timeout: dialTimeout,
	}
	return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		var dialer Dialer = direct
		isLocal := isLocalAddr(addr)
		if !isLocal {
			proxyDialer, err := getProxyDialer()
			if err != nil {
				return nil, err
			}
			dialer = proxyDialer
		}
		logger.DebugContext(ctx, "dial",
			"network", network,
			"addr", addr,
			"local", isLocal,
		)
		return dialer.DialContext(ctx, network, addr)
	})
}
