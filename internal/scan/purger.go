package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/guialves/fallow/internal/config"
)

// Deleter abstracts file removal. It exists so tests can substitute a
// recording implementation and prove that dry runs never delete.
type Deleter interface {
	Remove(path string) error
}

type osDeleter struct{}

func (osDeleter) Remove(path string) error { return os.Remove(path) }

// Reporter receives each deleted file as soon as its removal succeeds,
// so a crash mid-run still leaves a report of everything removed so far.
type Reporter interface {
	Record(rec FileRecord) error
}

// Purger walks a directory tree and removes files whose last access time
// exceeds the staleness threshold, skipping protected extensions.
type Purger struct {
	cfg      config.ScanConfig
	logger   *slog.Logger
	deleter  Deleter
	reporter Reporter
	dryRun   bool
	now      func() time.Time
}

// NewPurger creates a purger for the given scan configuration. In dry-run
// mode qualifying files are counted and listed but nothing is removed.
func NewPurger(cfg config.ScanConfig, logger *slog.Logger, dryRun bool) *Purger {
	return &Purger{
		cfg:     cfg,
		logger:  logger,
		deleter: osDeleter{},
		dryRun:  dryRun,
		now:     time.Now,
	}
}

// SetReporter attaches a reporter that records each successful deletion.
func (p *Purger) SetReporter(r Reporter) {
	p.reporter = r
}

// Run performs one scan-and-purge pass. Files that cannot be statted or
// removed are skipped with a warning and the pass continues; the only
// fatal errors are an unreadable root, context cancellation, and report
// write failures.
func (p *Purger) Run(ctx context.Context) (*Result, error) {
	root, err := filepath.Abs(p.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	result := &Result{
		ID:        uuid.New().String(),
		Root:      root,
		DryRun:    p.dryRun,
		StartedAt: p.now().UTC(),
	}

	walker := NewWalker(p.cfg.ExcludeDirs)
	protected := NewExtSet(p.cfg.ProtectedExtensions)
	maxAge := p.cfg.MaxAge()
	now := p.now()

	p.logger.Info("scan started",
		slog.String("id", result.ID),
		slog.String("root", root),
		slog.Duration("max_age", maxAge),
		slog.Bool("dry_run", p.dryRun))

	walkErr := walker.Walk(ctx, root, func(path string, info os.FileInfo) error {
		atime := AccessTime(info)
		if !IsStale(atime, now, maxAge) {
			result.Fresh++
			return nil
		}
		if protected.Protected(path) {
			result.Protected++
			p.logger.Debug("protected", slog.String("path", path))
			return nil
		}

		// Size and access time are captured here, before removal; a
		// deleted file can no longer be statted.
		rec := FileRecord{Path: path, Size: info.Size(), AccessTime: atime}

		if p.dryRun {
			if !canRemove(path) {
				result.Failed++
				p.logger.Warn("would fail to delete",
					slog.String("path", path),
					slog.String("reason", "parent directory not writable"))
				return nil
			}
			result.Deleted = append(result.Deleted, rec)
			result.FreedBytes += rec.Size
			return nil
		}

		if err := p.deleter.Remove(path); err != nil {
			result.Failed++
			p.logger.Warn("delete failed",
				slog.String("path", path),
				slog.String("reason", describeError(err)))
			return nil
		}

		result.Deleted = append(result.Deleted, rec)
		result.FreedBytes += rec.Size
		p.logger.Debug("deleted",
			slog.String("path", path),
			slog.Int64("size", rec.Size))

		if p.reporter != nil {
			if err := p.reporter.Record(rec); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
		}
		return nil
	})

	result.Scanned = walker.Scanned()
	result.Warnings = walker.Warnings()
	result.CompletedAt = p.now().UTC()

	if walkErr != nil {
		return result, walkErr
	}

	p.logger.Info("scan complete",
		slog.String("id", result.ID),
		slog.Int("scanned", result.Scanned),
		slog.Int("deleted", len(result.Deleted)),
		slog.Int("failed", result.Failed),
		slog.Int64("freed_bytes", result.FreedBytes),
		slog.Duration("took", result.Duration()))

	return result, nil
}
