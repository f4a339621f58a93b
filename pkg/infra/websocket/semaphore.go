package websocket

// Semaphore bounds the number of admin panel feed clients. Acquire
// never blocks; the upgrade handler rejects the connection instead.
type Semaphore struct {
	slots chan struct{}
}

func NewSemaphore(maxClients int) *Semaphore {
	return &Semaphore{
		slots: make(chan struct{}, maxClients),
	}
}

func (s *Semaphore) Acquire() bool {
	select {
	case s.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *Semaphore) Release() {
	select {
	case <-s.slots:
	default:
	}
}

func (s *Semaphore) Count() int {
	return len(s.slots)
}
