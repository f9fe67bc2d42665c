package widget

import "sync"

// eventLoop runs posted funcs one at a time, in posting order, on a single goroutine.
// Posting never blocks so a running func may post follow-up work.
type eventLoop struct {
	mu      sync.Mutex
	queue   []func()
	stopped bool
	wakeup  chan struct{}
	done    chan struct{}
}

func newEventLoop() *eventLoop {
	l := &eventLoop{
		wakeup: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go l.run()
	return l
}

// post returns false once the loop is stopped; the func is then dropped.
func (l *eventLoop) post(f func()) bool {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, f)
	l.mu.Unlock()

	select {
	case l.wakeup <- struct{}{}:
	default:
	}
	return true
}

// stop lets already posted work finish and waits for the loop goroutine to exit.
func (l *eventLoop) stop() {
	l.mu.Lock()
	alreadyStopped := l.stopped
	l.stopped = true
	l.mu.Unlock()

	if !alreadyStopped {
		select {
		case l.wakeup <- struct{}{}:
		default:
		}
	}
	<-l.done
}

func (l *eventLoop) run() {
	defer close(l.done)
	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		stopped := l.stopped
		l.mu.Unlock()

		for _, f := range batch {
			f()
		}
		if len(batch) > 0 {
			continue
		}
		if stopped {
			return
		}
		<-l.wakeup
	}
}
