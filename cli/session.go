package cli

import (
	"fmt"
	"time"

	"github.com/fahmaliyi/mypw/vault"
)

// session holds an unlocked vault for the lifetime of one command or one
// interactive run. The master password stays in memory so mutations can be
// written straight back through the store.
type session struct {
	cfg      *Config
	store    *vault.Store
	password []byte
	contents vault.Contents
}

// login prompts for the master password and decrypts the vault.
func login() (*session, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	store := vault.NewStore(cfg.VaultPath, nil)
	if !store.Exists() {
		return nil, vault.ErrVaultNotFound
	}

	password, err := ReadPassword("Enter master password: ")
	if err != nil {
		return nil, err
	}

	contents, err := store.Load(password)
	if err != nil {
		vault.Zero(password)
		return nil, err
	}

	return &session{cfg: cfg, store: store, password: password, contents: contents}, nil
}

func (s *session) close() {
	vault.Zero(s.password)
	s.contents = nil
}

// persist writes the current contents back to disk.
func (s *session) persist() error {
	return s.store.Persist(s.contents, s.password)
}

func (s *session) clipboardTimeout() time.Duration {
	return time.Duration(s.cfg.ClipboardClearSeconds) * time.Second
}

// addEntry runs the interactive add flow: service, overwrite check, username
// and either a generated or a typed password.
func (s *session) addEntry() error {
	service, err := ReadLine("Enter service name (e.g. Google, GitHub): ")
	if err != nil {
		return err
	}
	if service == "" {
		return fmt.Errorf("service name cannot be empty")
	}

	if s.contents.Has(service) {
		if !Confirm(fmt.Sprintf("Service %q already exists. Overwrite?", service), false) {
			printDim("Operation cancelled.")
			return nil
		}
	}

	username, err := ReadLine("Enter username/email: ")
	if err != nil {
		return err
	}

	var password string
	if Confirm("Generate a strong password automatically?", true) {
		password, err = vault.Generate(20, vault.AllClasses())
		if err != nil {
			return err
		}
		fmt.Printf("Generated password: %s\n", okStyle.Render(password))
	} else {
		pw := ReadPasswordMasked("Enter password: ")
		password = string(pw)
		vault.Zero(pw)
	}

	s.contents.Upsert(service, vault.Entry{Username: username, Password: password})
	if err := s.persist(); err != nil {
		return err
	}
	printOK("Entry for %q added successfully.", service)
	return nil
}

// getEntry shows one entry, password masked, with optional clipboard copy.
func (s *session) getEntry(service string) error {
	e, err := s.contents.Get(service)
	if err != nil {
		printError("No entry found for %q.", service)
		return nil
	}

	renderEntry(vault.NormalizeService(service), e)

	if Confirm(fmt.Sprintf("\nCopy password to clipboard? (clears in %ds)", s.cfg.ClipboardClearSeconds), true) {
		if err := copyWithClear(e.Password, s.clipboardTimeout()); err != nil {
			printDim("Clipboard unavailable: %v", err)
		}
	}
	return nil
}

func (s *session) listEntries() {
	items := s.contents.List()
	if len(items) == 0 {
		printWarn("Your vault is empty. Use `mypw add` to add an entry.")
		return
	}
	renderList(items)
}

// deleteEntry removes one entry after confirmation.
func (s *session) deleteEntry(service string) error {
	if !s.contents.Has(service) {
		printError("No entry found for %q.", service)
		return nil
	}
	if !Confirm(fmt.Sprintf("Are you sure you want to delete the entry for %q?", service), false) {
		printDim("Operation cancelled.")
		return nil
	}
	if err := s.contents.Remove(service); err != nil {
		return err
	}
	if err := s.persist(); err != nil {
		return err
	}
	printOK("Entry for %q deleted.", service)
	return nil
}
