package usecase

import "github.com/google/uuid"

// identity is an authenticated user or guest. credential is the token or guest session id.
type identity struct {
	credential string
	name       string
	guest      bool
}

// sessions maps credentials to identities. Entries never expire.
type sessions struct {
	byCredential map[string]*identity
}

func newSessions() *sessions {
	return &sessions{
		byCredential: make(map[string]*identity),
	}
}

// issue creates a new identity with a fresh random credential.
func (that *sessions) issue(name string, guest bool) *identity {
	id := &identity{
		credential: uuid.NewString(),
		name:       name,
		guest:      guest,
	}
	that.byCredential[id.credential] = id

	return id
}

func (that *sessions) lookup(credential string) (*identity, bool) {
	id, ok := that.byCredential[credential]
	return id, ok
}
