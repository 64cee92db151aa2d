package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramonehamilton/mtg-meta-service/internal/storage"
)

var (
	backupPassword  string
	restorePassword string
)

var backupCmd = &cobra.Command{
	Use:   "backup <destination>",
	Short: "Write a snapshot of the database",
	Long: `Copy the database to a snapshot file. With --password the snapshot is
encrypted with AES-256-GCM using a key derived from the password.`,
	Args: cobra.ExactArgs(1),
	RunE: runBackup,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <snapshot>",
	Short: "Restore the database from a snapshot",
	Long: `Replace the database with the contents of a snapshot file. Encrypted
snapshots require the --password they were created with.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	backupCmd.Flags().StringVar(&backupPassword, "password", "", "encrypt the snapshot with this password")
	restoreCmd.Flags().StringVar(&restorePassword, "password", "", "password for an encrypted snapshot")
}

func runBackup(cmd *cobra.Command, args []string) error {
	dest := args[0]
	if err := storage.Snapshot(dbPath, dest, backupPassword); err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Snapshot written to %s\n", dest)
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	src := args[0]
	if err := storage.RestoreSnapshot(src, dbPath, restorePassword); err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Database restored from %s\n", src)
	return nil
}
