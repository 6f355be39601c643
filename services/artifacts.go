package services

import (
	"sync"

	"github.com/google/uuid"
)

// ArtifactStore holds generated contract documents in memory, keyed by an
// opaque handle. Each session owns at most one live handle: storing a new
// document for a session releases the one it supersedes. Handles are also
// released explicitly when the user dismisses the preview or logs out.
type ArtifactStore struct {
	mu        sync.Mutex
	docs      map[string][]byte
	bySession map[string]string
}

// NewArtifactStore returns an empty store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{
		docs:      make(map[string][]byte),
		bySession: make(map[string]string),
	}
}

// Put stores a document for a session and returns its handle, releasing any
// handle the session held before.
func (st *ArtifactStore) Put(sessionID string, pdf []byte) string {
	st.mu.Lock()
	defer st.mu.Unlock()

	if prev, ok := st.bySession[sessionID]; ok {
		delete(st.docs, prev)
	}

	handle := uuid.NewString()
	st.docs[handle] = pdf
	st.bySession[sessionID] = handle
	return handle
}

// Get returns the document for a handle, if it is still live.
func (st *ArtifactStore) Get(handle string) ([]byte, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	pdf, ok := st.docs[handle]
	return pdf, ok
}

// Release revokes a handle. Releasing an already-released handle is a no-op.
func (st *ArtifactStore) Release(handle string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.docs, handle)
	for session, h := range st.bySession {
		if h == handle {
			delete(st.bySession, session)
		}
	}
}

// ReleaseSession revokes whatever handle the session holds. Called on
// logout so documents do not outlive the session that produced them.
func (st *ArtifactStore) ReleaseSession(sessionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if handle, ok := st.bySession[sessionID]; ok {
		delete(st.docs, handle)
		delete(st.bySession, sessionID)
	}
}

// Handle returns the live handle for a session, if any.
func (st *ArtifactStore) Handle(sessionID string) (string, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	handle, ok := st.bySession[sessionID]
	return handle, ok
}
