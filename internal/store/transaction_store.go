package store

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/meghaa105/personal-finance-sub000/internal/logging"
	"github.com/meghaa105/personal-finance-sub000/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// StoredTransaction is a transaction that has been confirmed into the store.
// ID is the content-derived identity key assigned at store time.
type StoredTransaction struct {
	ID          string
	ImportBatch string
	Transaction models.Transaction
}

// record is the flat YAML form of a stored transaction. Dates and amounts are
// kept as strings so the file stays readable and the encoding stable.
type record struct {
	ID          string `yaml:"id"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Amount      string `yaml:"amount"`
	Type        string `yaml:"type"`
	Category    string `yaml:"category"`
	Source      string `yaml:"source"`
	Currency    string `yaml:"currency,omitempty"`
	ImportBatch string `yaml:"import_batch,omitempty"`
}

type transactionFile struct {
	Transactions []record `yaml:"transactions"`
}

// TransactionStore is the durable home of confirmed transactions. Writes are
// serialized; AddMany is idempotent under retry because identity is derived
// from transaction content.
type TransactionStore struct {
	path   string
	mu     sync.Mutex
	logger logging.Logger
}

// NewTransactionStore creates a store backed by the given YAML file.
func NewTransactionStore(path string, logger logging.Logger) *TransactionStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &TransactionStore{
		path:   path,
		logger: logger,
	}
}

// Key derives the deterministic identity of a transaction from its date,
// description and amount. Identical content always yields the same key, so
// colliding keys are treated as the same transaction.
func Key(tx models.Transaction) string {
	composite := fmt.Sprintf("%s|%s|%s",
		tx.Date.Format(models.DateLayoutISO),
		tx.Description,
		tx.Amount.StringFixed(2))
	return base64.StdEncoding.EncodeToString([]byte(composite))
}

// GetAll returns every stored transaction. A missing file yields an empty
// slice.
func (s *TransactionStore) GetAll() ([]StoredTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// AddMany assigns identity keys to the incoming transactions and appends the
// ones whose key is not already present. Duplicates are silently skipped, not
// erred, which makes batch import idempotent under retry. It returns the
// number of transactions actually added.
func (s *TransactionStore) AddMany(txs []models.Transaction, batchID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(existing))
	for _, st := range existing {
		seen[st.ID] = true
	}

	added := 0
	for _, tx := range txs {
		tx.Normalize()
		id := Key(tx)
		if seen[id] {
			s.logger.Debug("Skipping duplicate transaction",
				logging.Field{Key: "id", Value: id},
				logging.Field{Key: "description", Value: tx.Description})
			continue
		}
		seen[id] = true
		existing = append(existing, StoredTransaction{
			ID:          id,
			ImportBatch: batchID,
			Transaction: tx,
		})
		added++
	}

	if added > 0 {
		if err := s.save(existing); err != nil {
			return 0, err
		}
	}

	s.logger.Info("Added transactions to store",
		logging.Field{Key: "added", Value: added},
		logging.Field{Key: "skipped", Value: len(txs) - added})
	return added, nil
}

func (s *TransactionStore) load() ([]StoredTransaction, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []StoredTransaction{}, nil
		}
		return nil, fmt.Errorf("error reading transaction store: %w", err)
	}

	var file transactionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing transaction store: %w", err)
	}

	stored := make([]StoredTransaction, 0, len(file.Transactions))
	for _, rec := range file.Transactions {
		st, err := recordToStored(rec)
		if err != nil {
			s.logger.WithError(err).Warn("Skipping corrupt store record",
				logging.Field{Key: "id", Value: rec.ID})
			continue
		}
		stored = append(stored, st)
	}
	return stored, nil
}

func (s *TransactionStore) save(stored []StoredTransaction) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file := transactionFile{Transactions: make([]record, 0, len(stored))}
	for _, st := range stored {
		file.Transactions = append(file.Transactions, storedToRecord(st))
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("error marshaling transaction store: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("error writing transaction store: %w", err)
	}
	return nil
}

func storedToRecord(st StoredTransaction) record {
	return record{
		ID:          st.ID,
		Date:        st.Transaction.Date.Format(models.DateLayoutISO),
		Description: st.Transaction.Description,
		Amount:      st.Transaction.Amount.StringFixed(2),
		Type:        string(st.Transaction.Type),
		Category:    st.Transaction.Category,
		Source:      string(st.Transaction.Source),
		Currency:    st.Transaction.Currency,
		ImportBatch: st.ImportBatch,
	}
}

func recordToStored(rec record) (StoredTransaction, error) {
	date, err := timeFromISO(rec.Date)
	if err != nil {
		return StoredTransaction{}, err
	}
	amount, err := decimal.NewFromString(rec.Amount)
	if err != nil {
		return StoredTransaction{}, fmt.Errorf("invalid stored amount %q: %w", rec.Amount, err)
	}
	return StoredTransaction{
		ID:          rec.ID,
		ImportBatch: rec.ImportBatch,
		Transaction: models.Transaction{
			Date:        date,
			Description: rec.Description,
			Amount:      amount,
			Type:        models.TransactionType(rec.Type),
			Category:    rec.Category,
			Source:      models.Source(rec.Source),
			Currency:    rec.Currency,
		},
	}, nil
}
