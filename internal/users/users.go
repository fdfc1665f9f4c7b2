// Package users implements the investigator credential store: a single
// JSON document of accounts with bcrypt password hashes. It backs the
// login flow and supplies the owner identity that report creation and
// listing consume.
package users

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"

	"github.com/fireline-tools/fireline/internal/logger"
	"github.com/fireline-tools/fireline/pkg/types"
)

// Bootstrap admin credentials, created when the store has no admin yet.
// The password is meant to be changed right after first login.
const (
	DefaultAdminOEC      = "123456"
	DefaultAdminPassword = "admin123"
)

// database is the on-disk shape of the credential store.
type database struct {
	Meta  databaseMeta  `json:"meta"`
	Users []*types.User `json:"users"`
}

type databaseMeta struct {
	Version int `json:"version"`
}

// Store reads and writes the credential document at a fixed path.
type Store struct {
	path string
}

// NewStore opens the credential store at path, creating the parent
// directory if needed.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating credential store directory: %w", err)
	}
	return &Store{path: path}, nil
}

// load reads the database. Missing and unparsable files both yield an
// empty database; corruption is logged so it is not mistaken for a
// first run.
func (s *Store) load() *database {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("unreadable credential store %s: %v", s.path, err)
		}
		return &database{Meta: databaseMeta{Version: 1}}
	}
	var db database
	if err := json.Unmarshal(raw, &db); err != nil {
		logger.Warn("corrupt credential store %s: %v", s.path, err)
		return &database{Meta: databaseMeta{Version: 1}}
	}
	if db.Meta.Version == 0 {
		db.Meta.Version = 1
	}
	return &db
}

// save persists the database with the same temp-and-rename pattern the
// report store uses.
func (s *Store) save(db *database) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credential store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".users-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing credential store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing credential store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("committing credential store: %w", err)
	}
	return nil
}

func findUser(db *database, oec string) *types.User {
	for _, u := range db.Users {
		if u.OEC == oec {
			return u
		}
	}
	return nil
}

// HashPassword returns the bcrypt hash for a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// EnsureAdmin bootstraps the store: when no admin account exists, the
// default admin is created. Returns true when the store was modified.
func (s *Store) EnsureAdmin() (bool, error) {
	db := s.load()
	for _, u := range db.Users {
		if u.IsAdmin() {
			return false, nil
		}
	}
	if findUser(db, DefaultAdminOEC) != nil {
		return false, nil
	}

	hash, err := HashPassword(DefaultAdminPassword)
	if err != nil {
		return false, err
	}
	db.Users = append(db.Users, &types.User{
		OEC:          DefaultAdminOEC,
		Role:         types.RoleAdmin,
		PasswordHash: hash,
		Active:       true,
	})
	if err := s.save(db); err != nil {
		return false, err
	}
	return true, nil
}

// Add creates a new account. The OEC must be a valid owner identity and
// must not already exist.
func (s *Store) Add(u types.User, password string) error {
	if err := types.ValidateOwnerID(u.OEC); err != nil {
		return err
	}
	db := s.load()
	if findUser(db, u.OEC) != nil {
		return fmt.Errorf("%w: %s", types.ErrUserExists, u.OEC)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	if u.Role == "" {
		u.Role = types.RoleUser
	}
	u.Active = true
	db.Users = append(db.Users, &u)
	return s.save(db)
}

// Authenticate verifies the credentials and returns the account. A
// deactivated account cannot log in even with the right password.
func (s *Store) Authenticate(oec, password string) (*types.User, error) {
	db := s.load()
	u := findUser(db, oec)
	if u == nil {
		return nil, fmt.Errorf("%w: %s", types.ErrUserNotFound, oec)
	}
	if !u.Active {
		return nil, fmt.Errorf("%w: %s", types.ErrUserInactive, oec)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, types.ErrBadPassword
	}
	out := *u
	return &out, nil
}

// Get returns the account for oec without checking credentials.
func (s *Store) Get(oec string) (*types.User, error) {
	db := s.load()
	u := findUser(db, oec)
	if u == nil {
		return nil, fmt.Errorf("%w: %s", types.ErrUserNotFound, oec)
	}
	out := *u
	return &out, nil
}

// List returns all accounts in store order.
func (s *Store) List() []types.User {
	db := s.load()
	out := make([]types.User, 0, len(db.Users))
	for _, u := range db.Users {
		out = append(out, *u)
	}
	return out
}

// SetPassword replaces the password hash for an existing account.
func (s *Store) SetPassword(oec, password string) error {
	db := s.load()
	u := findUser(db, oec)
	if u == nil {
		return fmt.Errorf("%w: %s", types.ErrUserNotFound, oec)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.save(db)
}

// SetActive toggles the account's active flag.
func (s *Store) SetActive(oec string, active bool) error {
	db := s.load()
	u := findUser(db, oec)
	if u == nil {
		return fmt.Errorf("%w: %s", types.ErrUserNotFound, oec)
	}
	u.Active = active
	return s.save(db)
}
