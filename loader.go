package rebalance

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadTargets reads the target allocation file.
func ReadTargets(path string) ([]TargetRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open targets file %q: %w", path, err)
	}
	defer f.Close()

	targets, err := DecodeTargets(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode targets file %q: %w", path, err)
	}
	return targets, nil
}

// ReadHoldings reads the holdings snapshot file.
func ReadHoldings(path string, column int) ([]HoldingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", path, err)
	}
	defer f.Close()

	holdings, err := DecodeHoldings(f, column)
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio file %q: %w", path, err)
	}
	return holdings, nil
}

// WriteHoldings overwrites the holdings snapshot file.
//
// The file is first written next to its final destination then renamed, so
// that a failure never leaves a truncated snapshot behind.
func WriteHoldings(path string, records []HoldingRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for portfolio file %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error opening portfolio file %q for writing: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeHoldings(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing portfolio file %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing portfolio file %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing portfolio file %q: %w", path, err)
	}
	return nil
}

// Session is a portfolio loaded from its files.
//
// Holdings that have no target are kept aside as Untracked so that saving
// the session does not drop them from the snapshot.
type Session struct {
	TargetsFile   string
	PortfolioFile string
	ValueColumn   int

	Portfolio *Portfolio
	Untracked []HoldingRecord
}

// Load reads the targets and the holdings and joins them into a portfolio.
// A missing portfolio file is an error wrapping fs.ErrNotExist, see
// LoadEmpty.
func Load(targetsFile, portfolioFile string, column int) (*Session, error) {
	targets, err := ReadTargets(targetsFile)
	if err != nil {
		return nil, err
	}
	holdings, err := ReadHoldings(portfolioFile, column)
	if err != nil {
		return nil, err
	}
	return newSession(targetsFile, portfolioFile, column, targets, holdings)
}

// LoadEmpty reads the targets and builds a portfolio where nothing is held
// yet.
func LoadEmpty(targetsFile, portfolioFile string, column int) (*Session, error) {
	targets, err := ReadTargets(targetsFile)
	if err != nil {
		return nil, err
	}
	return newSession(targetsFile, portfolioFile, column, targets, nil)
}

func newSession(targetsFile, portfolioFile string, column int, targets []TargetRecord, holdings []HoldingRecord) (*Session, error) {
	p, untracked, err := Join(targets, holdings)
	if err != nil {
		return nil, fmt.Errorf("could not join %q and %q: %w", targetsFile, portfolioFile, err)
	}
	return &Session{
		TargetsFile:   targetsFile,
		PortfolioFile: portfolioFile,
		ValueColumn:   column,
		Portfolio:     p,
		Untracked:     untracked,
	}, nil
}

// Save overwrites the portfolio file with the current holdings, followed by
// the untracked ones.
func (s *Session) Save() error {
	records := append(s.Portfolio.Records(), s.Untracked...)
	return WriteHoldings(s.PortfolioFile, records)
}
