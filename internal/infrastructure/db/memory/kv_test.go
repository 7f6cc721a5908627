package memory

import (
	"testing"

	"github.com/workbridge/client/internal/infrastructure/db/kvtest"
)

func TestKVStore(t *testing.T) {
	kvtest.Run(t, NewKVStore())
}
