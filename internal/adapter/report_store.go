package adapter

import (
	"fmt"
	"log/slog"

	m "golcov.dev/pkg/golcov/internal/model"
)

const reportFilePerm = 0o644

// ReportStore persists finished report text.
type ReportStore interface {
	SaveLcov(path m.Path, text string) error
}

// LocalReportStore writes reports through a SourceFSAdapter.
type LocalReportStore struct {
	fs SourceFSAdapter
}

// NewReportStore constructs a LocalReportStore.
func NewReportStore(fs SourceFSAdapter) *LocalReportStore {
	return &LocalReportStore{fs: fs}
}

// SaveLcov stores text at path. Text outside the ASCII range is rejected
// before the destination is touched.
func (s *LocalReportStore) SaveLcov(path m.Path, text string) error {
	if err := checkASCII(text); err != nil {
		return err
	}

	if err := s.fs.WriteFileAtomic(path, []byte(text), reportFilePerm); err != nil {
		slog.Error("failed to write report", "path", path, "error", err)
		return fmt.Errorf("%w %s: %w", ErrIO, path, err)
	}

	slog.Debug("wrote report", "path", path, "bytes", len(text))

	return nil
}

func checkASCII(text string) error {
	for i := 0; i < len(text); i++ {
		if text[i] > 0x7f {
			return &EncodingError{Offset: i, Byte: text[i]}
		}
	}

	return nil
}
