package history

import "sync"

// Store keeps per-path stacks of prior file contents so undo_edit can
// restore the most recent version. It lives for the process lifetime; the
// one-shot CLI does not create one, but embedders that keep an engine
// around across requests do.
type Store struct {
	mu           sync.Mutex
	maxSnapshots int
	snapshots    map[string][]string
}

// NewStore creates a store that keeps at most maxSnapshots entries per path.
func NewStore(maxSnapshots int) *Store {
	if maxSnapshots <= 0 {
		maxSnapshots = 50
	}
	return &Store{
		maxSnapshots: maxSnapshots,
		snapshots:    make(map[string][]string),
	}
}

// Push records the current content of path before a mutating write.
// When the stack is full the oldest snapshot is dropped.
func (s *Store) Push(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stack := append(s.snapshots[path], content)
	if len(stack) > s.maxSnapshots {
		stack = stack[len(stack)-s.maxSnapshots:]
	}
	s.snapshots[path] = stack
}

// Pop removes and returns the most recent snapshot for path.
func (s *Store) Pop(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stack := s.snapshots[path]
	if len(stack) == 0 {
		return "", false
	}
	content := stack[len(stack)-1]
	s.snapshots[path] = stack[:len(stack)-1]
	return content, true
}

// Depth reports how many snapshots are held for path.
func (s *Store) Depth(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.snapshots[path])
}
