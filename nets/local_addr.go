package nets

import (
	"net"
	"strings"
)

// IsLocalAddr reports whether addr (host or host:port) resolves to a loopback or private address.
// Unresolvable hosts are not local.
type IsLocalAddr func(addr string) bool

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) bool {
		host := addr
		if h, _, err := net.SplitHostPort(addr); err == nil {
			host = h
		}
		if strings.EqualFold(host, "localhost") {
			return true
		}

		ips := []net.IP{net.ParseIP(host)}
		if ips[0] == nil {
			var err error
			ips, err = net.LookupIP(host)
			if err != nil {
				return false
			}
		}
		for _, ip := range ips {
			if ip.IsLoopback() || ip.IsPrivate() {
				return true
			}
		}
		return false
	}
}
