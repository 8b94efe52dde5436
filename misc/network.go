package misc

import (
	"errors"
	"net"
)

func GetFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}

	port := l.Addr().(*net.TCPAddr).Port

	err = l.Close()
	if err != nil {
		return 0, err
	}

	return port, nil
}

// GetLocalAddress returns the first IPv4 address of a non-loopback interface that is up
func GetLocalAddress() (string, error) {
	networkInterfaces, err := net.Interfaces()
	if err != nil {
		return "", errors.New("failed to find network interface on this device")
	}

	// Attempt to find the first non-loop back network interface with an IP address
	for _, elt := range networkInterfaces {
		if elt.Flags&net.FlagLoopback == 0 && elt.Flags&net.FlagUp != 0 {
			address, err := elt.Addrs()
			if err != nil {
				return "", errors.New("failed to get an address from the network interface")
			}

			for _, addr := range address {
				if ip, ok := addr.(*net.IPNet); ok {
					if ip4 := ip.IP.To4(); len(ip4) == net.IPv4len {
						return ip4.String(), nil
					}
				}
			}
		}
	}

	return "", errors.New("failed to find a non-loopback interface with valid address on this device")
}
