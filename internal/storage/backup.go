package storage

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
)

const (
	// backupMagicHeader identifies encrypted snapshot files.
	backupMagicHeader = "MTGMETA1"

	// Argon2id parameters (RFC 9106 recommendations).
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // KB
	argon2Threads = 4
	argon2KeyLen  = 32 // AES-256

	saltLength = 32
)

// Snapshot copies the database file at srcPath to destPath. A non-empty
// password encrypts the snapshot with Argon2id-derived AES-256-GCM; such
// files start with the magic header and are restored with RestoreSnapshot.
func Snapshot(srcPath, destPath, password string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read database file: %w", err)
	}

	if password != "" {
		data, err = encryptSnapshot(data, password)
		if err != nil {
			return fmt.Errorf("encrypt snapshot: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}
	if err := os.WriteFile(destPath, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// RestoreSnapshot writes the snapshot at srcPath to destPath, decrypting it
// when it carries the encrypted-snapshot header. A wrong password surfaces
// as a decryption error, not as corrupt output.
func RestoreSnapshot(srcPath, destPath, password string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	if IsEncryptedSnapshot(data) {
		if password == "" {
			return fmt.Errorf("snapshot is encrypted but no password was given")
		}
		data, err = decryptSnapshot(data, password)
		if err != nil {
			return fmt.Errorf("decrypt snapshot: %w", err)
		}
	}

	if err := os.WriteFile(destPath, data, 0o600); err != nil {
		return fmt.Errorf("write database file: %w", err)
	}
	return nil
}

// IsEncryptedSnapshot reports whether data starts with the encrypted
// snapshot header.
func IsEncryptedSnapshot(data []byte) bool {
	return len(data) >= len(backupMagicHeader) && string(data[:len(backupMagicHeader)]) == backupMagicHeader
}

func deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
}

// encryptSnapshot produces header || salt || nonce || ciphertext.
func encryptSnapshot(plaintext []byte, password string) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, len(backupMagicHeader)+len(salt)+len(nonce)+len(plaintext)+gcm.Overhead())
	out = append(out, backupMagicHeader...)
	out = append(out, salt...)
	out = append(out, nonce...)
	out = gcm.Seal(out, nonce, plaintext, nil)
	return out, nil
}

func decryptSnapshot(data []byte, password string) ([]byte, error) {
	rest := data[len(backupMagicHeader):]
	if len(rest) < saltLength {
		return nil, fmt.Errorf("snapshot truncated: missing salt")
	}
	salt, rest := rest[:saltLength], rest[saltLength:]

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	if len(rest) < gcm.NonceSize() {
		return nil, fmt.Errorf("snapshot truncated: missing nonce")
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}
