package datasource

import (
	"context"
	"slices"
	"sync"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// MemoryDataSource keeps securities and bars in memory, in insertion order.
type MemoryDataSource struct {
	mu         sync.RWMutex
	securities []types.Security
	bars       map[string]types.BarData
}

func NewMemoryDataSource() *MemoryDataSource {
	return &MemoryDataSource{
		bars: make(map[string]types.BarData),
	}
}

// Add registers a security and its bars, replacing any previous entry with the same code.
func (m *MemoryDataSource) Add(security types.Security, data types.BarData) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bars[security.Code]; ok {
		index := slices.IndexFunc(m.securities, func(s types.Security) bool { return s.Code == security.Code })
		m.securities[index] = security
	} else {
		m.securities = append(m.securities, security)
	}

	m.bars[security.Code] = types.BarData{UpdateTime: data.UpdateTime, Data: slices.Clone(data.Data)}
}

// ListSecurities implements DataSource.
func (m *MemoryDataSource) ListSecurities(_ context.Context) ([]types.Security, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.securities), nil
}

// LoadDailyBars implements DataSource. The returned bars are a copy.
func (m *MemoryDataSource) LoadDailyBars(_ context.Context, code string) (types.BarData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.bars[code]
	if !ok {
		return types.BarData{}, errors.Newf(errors.ErrCodeDataNotFound, "security %s not found", code)
	}

	return types.BarData{UpdateTime: data.UpdateTime, Data: slices.Clone(data.Data)}, nil
}

// Close implements DataSource.
func (m *MemoryDataSource) Close() error {
	return nil
}
