package model

import "fmt"

// PortEntity is one TCP listening socket as reported by the inspector.
// Entities are immutable snapshot values; a refresh replaces the whole list.
type PortEntity struct {
	Port    int
	Process string // command name, may be truncated by lsof
	PID     string // kept textual; parsed and validated only at kill time
	Address string // canonical: dotted IPv4, 0.0.0.0 for wildcard, 127.0.0.1 for loopback
	User    string
}

// Key is the dedup triple. A dual-stack process binding the same port on
// multiple interfaces must collapse to one entity per (address, port, pid).
func (e PortEntity) Key() string {
	return fmt.Sprintf("%s|%d|%s", e.Address, e.Port, e.PID)
}
