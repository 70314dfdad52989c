package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iho/ledgercore/internal/domain"
	"github.com/iho/ledgercore/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	GetByIDFunc func(ctx context.Context, id string) (*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Put seeds an account into the store.
func (m *MockAccountRepository) Put(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

// MockBalanceRepository is a mock implementation of BalanceRepository. Update
// and UpdateAll perform a real compare-and-swap on the stored version, so
// concurrency tests exercise the same conflict path as the database.
type MockBalanceRepository struct {
	mu       sync.RWMutex
	balances map[string]*domain.Balance

	GetByAccountIDFunc  func(ctx context.Context, accountID string) (*domain.Balance, error)
	GetByAccountIDsFunc func(ctx context.Context, accountIDs []string) (map[string]*domain.Balance, error)
	UpdateFunc          func(ctx context.Context, tx usecase.Transaction, balance *domain.Balance) error
	UpdateAllFunc       func(ctx context.Context, tx usecase.Transaction, balances []*domain.Balance) error
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{
		balances: make(map[string]*domain.Balance),
	}
}

// Put seeds a balance into the store.
func (m *MockBalanceRepository) Put(balance *domain.Balance) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[balance.AccountID] = balance
}

func (m *MockBalanceRepository) GetByAccountID(ctx context.Context, accountID string) (*domain.Balance, error) {
	if m.GetByAccountIDFunc != nil {
		return m.GetByAccountIDFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.balances[accountID]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, domain.ErrBalanceNotFound
}

func (m *MockBalanceRepository) GetByAccountIDs(ctx context.Context, accountIDs []string) (map[string]*domain.Balance, error) {
	if m.GetByAccountIDsFunc != nil {
		return m.GetByAccountIDsFunc(ctx, accountIDs)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string]*domain.Balance, len(accountIDs))
	for _, id := range accountIDs {
		if b, ok := m.balances[id]; ok {
			copied := *b
			result[id] = &copied
		}
	}
	return result, nil
}

func (m *MockBalanceRepository) Update(ctx context.Context, tx usecase.Transaction, balance *domain.Balance) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, balance)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.casLocked(tx, balance)
}

func (m *MockBalanceRepository) UpdateAll(ctx context.Context, tx usecase.Transaction, balances []*domain.Balance) error {
	if m.UpdateAllFunc != nil {
		return m.UpdateAllFunc(ctx, tx, balances)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range balances {
		if err := m.casLocked(tx, b); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockBalanceRepository) casLocked(tx usecase.Transaction, balance *domain.Balance) error {
	stored, ok := m.balances[balance.AccountID]
	if !ok || stored.Version != balance.Version {
		return domain.ErrConcurrencyConflict
	}
	copied := *balance
	copied.Version = balance.Version + 1
	m.balances[balance.AccountID] = &copied
	registerUndo(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.balances[balance.AccountID] = stored
	})
	return nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
// Create enforces business reference uniqueness like the database index does.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction
	byRef        map[string]string

	GetByIDFunc            func(ctx context.Context, id string) (*domain.Transaction, error)
	GetByBusinessRefIDFunc func(ctx context.Context, businessRefID string) (*domain.Transaction, error)
	CreateFunc             func(ctx context.Context, tx usecase.Transaction, transaction *domain.Transaction) error
	UpdateStatusFunc       func(ctx context.Context, tx usecase.Transaction, transaction *domain.Transaction) error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
		byRef:        make(map[string]string),
	}
}

// Put seeds a transaction into the store.
func (m *MockTransactionRepository) Put(transaction *domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[transaction.ID] = transaction
	m.byRef[transaction.BusinessRefID] = transaction.ID
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.transactions[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) GetByBusinessRefID(ctx context.Context, businessRefID string) (*domain.Transaction, error) {
	if m.GetByBusinessRefIDFunc != nil {
		return m.GetByBusinessRefIDFunc(ctx, businessRefID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id, ok := m.byRef[businessRefID]; ok {
		return m.transactions[id], nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, transaction *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, transaction)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byRef[transaction.BusinessRefID]; ok {
		return domain.ErrDuplicateBusinessRef
	}
	m.transactions[transaction.ID] = transaction
	m.byRef[transaction.BusinessRefID] = transaction.ID
	registerUndo(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.transactions, transaction.ID)
		delete(m.byRef, transaction.BusinessRefID)
	})
	return nil
}

func (m *MockTransactionRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, transaction *domain.Transaction) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, transaction)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.transactions[transaction.ID]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	m.transactions[transaction.ID] = transaction
	registerUndo(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.transactions[transaction.ID] = prev
	})
	return nil
}

// MockJournalEntryRepository is a mock implementation of JournalEntryRepository.
type MockJournalEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.JournalEntry

	CreateFunc             func(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error
	CreateAllFunc          func(ctx context.Context, tx usecase.Transaction, entries []*domain.JournalEntry) error
	GetByTransactionIDFunc func(ctx context.Context, transactionID string) ([]*domain.JournalEntry, error)
}

func NewMockJournalEntryRepository() *MockJournalEntryRepository {
	return &MockJournalEntryRepository{
		entries: make(map[string]*domain.JournalEntry),
	}
}

func (m *MockJournalEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	registerUndo(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.entries, entry.ID)
	})
	return nil
}

func (m *MockJournalEntryRepository) CreateAll(ctx context.Context, tx usecase.Transaction, entries []*domain.JournalEntry) error {
	if m.CreateAllFunc != nil {
		return m.CreateAllFunc(ctx, tx, entries)
	}
	for _, e := range entries {
		if err := m.Create(ctx, tx, e); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockJournalEntryRepository) GetByTransactionID(ctx context.Context, transactionID string) ([]*domain.JournalEntry, error) {
	if m.GetByTransactionIDFunc != nil {
		return m.GetByTransactionIDFunc(ctx, transactionID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.JournalEntry
	for _, e := range m.entries {
		if e.TransactionID == transactionID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events map[string]*domain.OutboxEvent

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetPendingFunc    func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkProcessedFunc func(ctx context.Context, id string, processedAt time.Time) error
	MarkFailedFunc    func(ctx context.Context, id string) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{
		events: make(map[string]*domain.OutboxEvent),
	}
}

// Events returns all recorded events.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var events []*domain.OutboxEvent
	for _, e := range m.events {
		events = append(events, e)
	}
	return events
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[event.ID] = event
	registerUndo(tx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.events, event.ID)
	})
	return nil
}

func (m *MockOutboxRepository) GetPending(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetPendingFunc != nil {
		return m.GetPendingFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var events []*domain.OutboxEvent
	for _, e := range m.events {
		if e.Status == domain.OutboxEventStatusPending {
			events = append(events, e)
			if len(events) == limit {
				break
			}
		}
	}
	return events, nil
}

func (m *MockOutboxRepository) MarkProcessed(ctx context.Context, id string, processedAt time.Time) error {
	if m.MarkProcessedFunc != nil {
		return m.MarkProcessedFunc(ctx, id, processedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.events[id]; ok {
		e.Status = domain.OutboxEventStatusProcessed
		e.ProcessedAt = &processedAt
	}
	return nil
}

func (m *MockOutboxRepository) MarkFailed(ctx context.Context, id string) error {
	if m.MarkFailedFunc != nil {
		return m.MarkFailedFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.events[id]; ok {
		e.Status = domain.OutboxEventStatusFailed
		e.RetryCount++
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction. Repository mocks
// register undo hooks on it so that a rolled-back unit of work leaves no trace
// in the mock stores, matching database semantics.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	mu        sync.Mutex
	committed bool
	undo      []func()
}

// OnRollback registers fn to run if the transaction rolls back.
func (m *MockTransaction) OnRollback(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo = append(m.undo, fn)
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.committed {
		return nil
	}
	for i := len(m.undo) - 1; i >= 0; i-- {
		m.undo[i]()
	}
	m.undo = nil
	return nil
}

func registerUndo(tx usecase.Transaction, fn func()) {
	if mt, ok := tx.(*MockTransaction); ok {
		mt.OnRollback(fn)
	}
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockClock is a fixed-time Clock.
type MockClock struct {
	NowFunc func() time.Time
}

func NewMockClock(fixed time.Time) *MockClock {
	return &MockClock{NowFunc: func() time.Time { return fixed }}
}

func (m *MockClock) Now() time.Time {
	if m.NowFunc != nil {
		return m.NowFunc()
	}
	return time.Now().UTC()
}
