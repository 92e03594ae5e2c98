package tables_test

import (
	"sync"
	"testing"

	"github.com/qubitkit/clifftab/enum"
)

// The enumeration indices are read-only after construction, so the test
// suite builds each group once and shares it.
var (
	once1Q, once2Q sync.Once
	idx1Q, idx2Q   *enum.Index
	err1Q, err2Q   error
)

// index1Q returns the shared 1-qubit enumeration index.
func index1Q(t *testing.T) *enum.Index {
	t.Helper()
	once1Q.Do(func() { idx1Q, err1Q = enum.Clifford1Q() })
	if err1Q != nil {
		t.Fatalf("Clifford1Q index failed: %v", err1Q)
	}

	return idx1Q
}

// index2Q returns the shared 2-qubit enumeration index.
func index2Q(t *testing.T) *enum.Index {
	t.Helper()
	once2Q.Do(func() { idx2Q, err2Q = enum.Clifford2Q() })
	if err2Q != nil {
		t.Fatalf("Clifford2Q index failed: %v", err2Q)
	}

	return idx2Q
}
