package modint

import (
	"reflect"
	"sync"
)

// setupCache memoizes deriveMontSetup per marker type so the conditional-
// double-and-reduce derivation in montgomery.go runs once per modulus, not
// once per element operation.
var setupCache sync.Map // map[reflect.Type]*montSetup

func setupFor(markerType reflect.Type, primeBE []uint64) *montSetup {
	if v, ok := setupCache.Load(markerType); ok {
		return v.(*montSetup)
	}
	s := deriveMontSetup(primeBE)
	actual, _ := setupCache.LoadOrStore(markerType, s)
	return actual.(*montSetup)
}
