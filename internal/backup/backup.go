package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/daybook-cli/daybook/internal/constants"
)

// BackupInfo contains information about a backup
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backups of the local data path. The source may be a single
// database file (SQLite backend) or a directory of key files (file backend);
// backups are timestamped siblings under a backups directory, rotated to the
// newest MaxBackups.
type Manager struct {
	dataPath  string
	backupDir string
}

// NewManager creates a backup manager for the given data path.
func NewManager(dataPath string) *Manager {
	configDir := filepath.Dir(dataPath)
	return &Manager{
		dataPath:  dataPath,
		backupDir: filepath.Join(configDir, constants.BackupDirName),
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup creates a new backup of the data path and rotates old backups.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	info, err := os.Stat(m.dataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("data path does not exist: %s", m.dataPath)
		}
		return "", fmt.Errorf("failed to stat data path: %w", err)
	}

	backupPath, err := m.uniqueBackupPath(info.IsDir())
	if err != nil {
		return "", err
	}

	if info.IsDir() {
		err = copyDir(m.dataPath, backupPath)
	} else {
		err = copyFile(m.dataPath, backupPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			// The backup itself succeeded; rotation failure is not fatal
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// uniqueBackupPath generates a timestamped backup path, appending seconds and
// then a counter when needed to avoid collisions.
func (m *Manager) uniqueBackupPath(isDir bool) (string, error) {
	suffix := m.backupSuffix(isDir)

	timestamp := time.Now().Format("20060102-1504")
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+suffix)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	timestamp = time.Now().Format("20060102-150405")
	path = filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+suffix)
	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, suffix))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}
}

func (m *Manager) backupSuffix(isDir bool) string {
	if isDir {
		return ""
	}
	if ext := filepath.Ext(m.dataPath); ext != "" {
		return ext
	}
	return ".bak"
}

// ListBackups returns all available backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), constants.BackupFilePrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: info.ModTime(),
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// RestoreBackup replaces the data path with the named backup. A safety backup
// of the current data is taken first.
func (m *Manager) RestoreBackup(backupPath string) error {
	info, err := os.Stat(backupPath)
	if err != nil {
		return fmt.Errorf("backup does not exist: %s", backupPath)
	}

	if _, err := os.Stat(m.dataPath); err == nil {
		if _, err := m.createBackup(true); err != nil {
			return fmt.Errorf("failed to create safety backup before restore: %w", err)
		}
	}

	if info.IsDir() {
		if err := os.RemoveAll(m.dataPath); err != nil {
			return fmt.Errorf("failed to clear data path: %w", err)
		}
		if err := copyDir(backupPath, m.dataPath); err != nil {
			return fmt.Errorf("failed to restore backup: %w", err)
		}
		return nil
	}
	if err := copyFile(backupPath, m.dataPath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	return nil
}

// rotateBackups removes the oldest backups beyond MaxBackups.
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) <= constants.MaxBackups {
		return nil
	}
	for _, old := range backups[constants.MaxBackups:] {
		if err := os.RemoveAll(old.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", old.Path, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0700); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			// Nested directories (e.g. logs) are not part of the key data
			continue
		}
		if err := copyFile(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
