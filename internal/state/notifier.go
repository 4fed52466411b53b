package state

import "sync"

// notifier is the change-notification half of a state container.
// Subscribers are invoked synchronously after each mutation, outside the
// container's data lock so a subscriber may read a fresh snapshot.
type notifier struct {
	mu   sync.Mutex
	subs []func()
}

// Subscribe registers fn to run after every mutation. There is no
// unsubscribe; subscribers live as long as the process.
func (n *notifier) Subscribe(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

func (n *notifier) notify() {
	n.mu.Lock()
	subs := make([]func(), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
