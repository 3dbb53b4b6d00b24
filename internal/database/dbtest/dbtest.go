// Package dbtest builds throwaway in-memory SQLite providers for tests.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/saulo-duarte/acervo-api/internal/database"
)

var seq atomic.Int64

// New returns a provider backed by a private in-memory database with the
// given models migrated. The provider is closed when the test ends.
func New(t *testing.T, models ...interface{}) *database.Provider {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	p := database.NewProvider(dsn, database.PoolSettings{MaxOpenConns: 1, MaxIdleConns: 1})
	db, err := p.DB()
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}
	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("falha ao migrar banco de teste: %v", err)
		}
	}

	t.Cleanup(func() { _ = p.Close() })
	return p
}
