package nets

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/bytetape/configs"
	"github.com/reusee/bytetape/logs"
	"github.com/reusee/bytetape/modes"
	"golang.org/x/net/proxy"
)

// ProxyAddr is the proxy used for fetching remote programs, as a url like socks5://host:port.
type ProxyAddr string

var _ configs.Configurable = ProxyAddr("")

func (ProxyAddr) ConfigExpr() string {
	return "proxy_addr"
}

var proxyEnvs = []string{
	"ALL_PROXY", "all_proxy",
	"HTTPS_PROXY", "https_proxy",
	"HTTP_PROXY", "http_proxy",
}

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) ProxyAddr {
	if mode == modes.ModeDevelopment {
		return ""
	}
	if addr := configs.Lookup[ProxyAddr](loader); addr != "" {
		logger.Debug("proxy from config", "addr", addr)
		return addr
	}
	for _, name := range proxyEnvs {
		if addr := os.Getenv(name); addr != "" {
			logger.Debug("proxy from env", "env", name, "addr", addr)
			return ProxyAddr(addr)
		}
	}
	return ""
}

func parseProxyAddr(addr ProxyAddr) (*url.URL, error) {
	u, err := url.Parse(string(addr))
	if err != nil {
		return nil, fmt.Errorf("bad proxy address %q: %w", addr, err)
	}
	switch u.Scheme {
	case "socks":
		u.Scheme = "socks5"
	case "":
		return nil, fmt.Errorf("bad proxy address %q: no scheme", addr)
	}
	return u, nil
}

// GetProxyDialer returns the dialer for non-local addresses; it dials directly when no proxy is set.
type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	addr ProxyAddr,
) GetProxyDialer {
	return sync.OnceValues(func() (Dialer, error) {
		direct := &net.Dialer{
			Timeout: dialTimeout,
		}
		if addr == "" {
			return direct, nil
		}
		u, err := parseProxyAddr(addr)
		if err != nil {
			return nil, err
		}
		viaProxy, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		if d, ok := viaProxy.(Dialer); ok {
			return d, nil
		}
		return DialerFunc(func(_ context.Context, network, addr string) (net.Conn, error) {
			return viaProxy.Dial(network, addr)
		}), nil
	})
}
