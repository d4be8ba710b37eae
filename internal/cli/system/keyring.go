package system

import (
	"fmt"

	"github.com/daybook-cli/daybook/internal/keyring"
	"github.com/daybook-cli/daybook/internal/storage"
)

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store securely."`
}

func (c *KeyringSetCmd) Run() error {
	if storage.HasEmbeddedCredentials(c.ConnectionString) {
		fmt.Println("Note: the connection string contains a password; it will only live in the OS keyring.")
	}
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run() error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return err
	}
	fmt.Println("Connection string removed from OS keyring.")
	return nil
}

type KeyringStatusCmd struct{}

func (c *KeyringStatusCmd) Run() error {
	if !keyring.IsAvailable() {
		fmt.Println("OS keyring is not available on this system.")
		return nil
	}
	if _, err := keyring.GetConnectionString(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("OS keyring is available; no connection string stored.")
			return nil
		}
		return err
	}
	fmt.Println("OS keyring is available; a connection string is stored.")
	return nil
}
