// services/backup_service.go
package services

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// BackupService copies the local database file into a backups directory on
// a cron schedule. Backups stay on the device; nothing leaves the machine.
type BackupService struct {
	dbPath string
	dir    string
	cron   *cron.Cron
}

func NewBackupService(dbPath string) *BackupService {
	dir := os.Getenv("BACKUP_DIR")
	if dir == "" {
		dir = "backups"
	}

	return &BackupService{
		dbPath: dbPath,
		dir:    dir,
	}
}

func (s *BackupService) StartScheduler() {
	schedule := os.Getenv("BACKUP_SCHEDULE")
	if schedule == "" {
		schedule = "0 3 * * *" // every day at 3 AM
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if err := s.RunBackup(); err != nil {
			log.Printf("Backup failed: %v", err)
		}
	}); err != nil {
		log.Printf("Invalid backup schedule %q: %v", schedule, err)
		return
	}

	c.Start()
	s.cron = c
	log.Println("Backup scheduler started")
}

func (s *BackupService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunBackup writes a timestamped copy of the database file.
func (s *BackupService) RunBackup() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	src, err := os.Open(s.dbPath)
	if err != nil {
		return err
	}
	defer src.Close()

	name := fmt.Sprintf("carllos-%s.db", time.Now().Format("20060102-150405"))
	target := filepath.Join(s.dir, name)

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	log.Printf("Backup written: %s", target)
	return nil
}
