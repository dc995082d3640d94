package service

import (
	"github.com/shopspring/decimal"

	"github.com/paperbroker/internal/domain"
	"github.com/paperbroker/internal/store"
)

// UserView bundles an account with its current cash balance for read
// endpoints.
type UserView struct {
	Account *domain.Account
	Balance decimal.Decimal
}

// UserService handles registration and user lookups. Registration
// creates the account and opens its ledger entry together; both live
// for the process lifetime, there is no deletion path.
type UserService struct {
	accounts        *store.AccountStore
	ledger          *store.Ledger
	startingBalance decimal.Decimal
}

// NewUserService creates a UserService. Every new account starts with
// startingBalance in cash.
func NewUserService(accounts *store.AccountStore, ledger *store.Ledger, startingBalance decimal.Decimal) *UserService {
	return &UserService{
		accounts:        accounts,
		ledger:          ledger,
		startingBalance: startingBalance,
	}
}

// Register creates a new account with an empty portfolio and the
// starting cash balance.
func (s *UserService) Register(username, password string) (*UserView, error) {
	if username == "" || password == "" {
		return nil, &domain.ValidationError{Message: "Missing fields"}
	}

	acct, err := s.accounts.Create(username, password)
	if err != nil {
		return nil, err
	}
	s.ledger.Open(acct.ID, s.startingBalance)

	return &UserView{Account: acct, Balance: s.startingBalance}, nil
}

// GetByUsername looks up a user and their current balance.
func (s *UserService) GetByUsername(username string) (*UserView, error) {
	acct, err := s.accounts.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.Balance(acct.ID)
	if err != nil {
		return nil, err
	}
	return &UserView{Account: acct, Balance: balance}, nil
}

// List returns all users in registration order.
func (s *UserService) List() []*UserView {
	accounts := s.accounts.List()
	views := make([]*UserView, 0, len(accounts))
	for _, acct := range accounts {
		balance, err := s.ledger.Balance(acct.ID)
		if err != nil {
			continue
		}
		views = append(views, &UserView{Account: acct, Balance: balance})
	}
	return views
}
