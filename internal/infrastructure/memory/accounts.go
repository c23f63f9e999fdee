package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/caja-api/internal/domain"
	"github.com/jhoicas/caja-api/internal/infrastructure/localauth"
)

var _ localauth.AccountStore = (*Accounts)(nil)

// Accounts cuentas del proveedor local indexadas por UID y email.
type Accounts struct {
	mu      sync.RWMutex
	byID    map[string]localauth.Account
	byEmail map[string]string
}

// NewAccounts crea el almacén vacío.
func NewAccounts() *Accounts {
	return &Accounts{byID: map[string]localauth.Account{}, byEmail: map[string]string{}}
}

func (a *Accounts) Create(_ context.Context, acc *localauth.Account) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.byEmail[acc.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	a.byID[acc.UID] = *acc
	a.byEmail[acc.Email] = acc.UID
	return nil
}

func (a *Accounts) GetByEmail(_ context.Context, email string) (*localauth.Account, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	uid, ok := a.byEmail[email]
	if !ok {
		return nil, nil
	}
	acc := a.byID[uid]
	return &acc, nil
}

func (a *Accounts) GetByID(_ context.Context, uid string) (*localauth.Account, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	acc, ok := a.byID[uid]
	if !ok {
		return nil, nil
	}
	return &acc, nil
}

func (a *Accounts) UpdateDisplayName(_ context.Context, uid, name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	acc, ok := a.byID[uid]
	if !ok {
		return domain.ErrUserNotFound
	}
	acc.DisplayName = name
	a.byID[uid] = acc
	return nil
}

func (a *Accounts) Delete(_ context.Context, uid string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	acc, ok := a.byID[uid]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(a.byID, uid)
	delete(a.byEmail, acc.Email)
	return nil
}
