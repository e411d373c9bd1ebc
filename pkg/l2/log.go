package l2

import "github.com/ethereum/go-ethereum/common"

// Event is a typed log payload.
type Event interface {
	EventName() string
}

// Log is an event emitted by the contract at Address.
type Log struct {
	Address common.Address
	Index   uint
	Event   Event
}

// FilterLogs returns the events of type T in logs, in emission order.
func FilterLogs[T Event](logs []*Log) []T {
	var out []T
	for _, l := range logs {
		if ev, ok := l.Event.(T); ok {
			out = append(out, ev)
		}
	}
	return out
}
