package users

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/kv"
)

// StorageKey is the kv key holding the JSON-encoded user mapping.
const StorageKey = "registeredUsers"

// Store reads and writes the user mapping. It keeps no state between calls:
// every operation re-reads the document, as other instances may share the
// underlying kv.Store.
type Store struct {
	kv  kv.Store
	now func() time.Time
}

func NewStore(s kv.Store) *Store {
	return &Store{kv: s, now: time.Now}
}

// load returns the current mapping. An absent or malformed document yields an
// empty mapping; only storage failures are errors.
func (s *Store) load(ctx context.Context) (*userMap, error) {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	m := newUserMap()
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, m); err != nil {
		return newUserMap(), nil
	}
	return m, nil
}

func (s *Store) save(ctx context.Context, m *userMap) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

// Register inserts a new user stamped with the current time in epoch
// milliseconds and rewrites the whole document. It returns
// common.ErrorAlreadyExists if the email is taken; the existing record is left
// untouched.
//
// The presence check and the write are not atomic.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	m, err := s.load(ctx)
	if err != nil {
		return err
	}

	if _, ok := m.get(email); ok {
		return fmt.Errorf("register %s: %w", email, common.ErrorAlreadyExists)
	}

	m.insert(Record{
		Name:             name,
		Email:            email,
		Password:         password,
		RegistrationTime: s.now().UnixMilli(),
	})

	return s.save(ctx, m)
}

// Authenticate returns the record for email when password matches it
// exactly, and (nil, nil) otherwise.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*Record, error) {
	m, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	r, ok := m.get(email)
	if !ok || r.Password != password {
		return nil, nil
	}
	return &r, nil
}

// ListByRegistrationOrder returns every record, oldest first. Records with the
// same timestamp keep their insertion order.
func (s *Store) ListByRegistrationOrder(ctx context.Context) ([]Record, error) {
	m, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	list := m.values()
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].RegistrationTime < list[j].RegistrationTime
	})
	return list, nil
}

const listingRule = "-----------------------------------------------------"

// FormatListing renders records for the diagnostic channel.
func FormatListing(records []Record, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	var b strings.Builder
	b.WriteString(listingRule + "\n")
	b.WriteString("REGISTERED USERS (chronological order):\n")
	b.WriteString(listingRule + "\n")

	if len(records) == 0 {
		b.WriteString("No users registered yet.\n")
	}

	for i, r := range records {
		registered := time.UnixMilli(r.RegistrationTime).In(loc).Format(time.DateTime)
		fmt.Fprintf(&b, "[#%d] Name: %s | Email: %s | Registered: %s\n", i+1, r.Name, r.Email, registered)
	}
	b.WriteString(listingRule)
	return b.String()
}
