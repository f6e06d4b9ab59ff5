// Package dbg turns search records and other pointers into readable names for
// trace logs.
package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Names are handed out lazily in order of demand and remembered forever. The
// memo holds on to every named pointer, so an address is never reused for
// something else while it has a name. It only grows while tracing is on. The
// same name does not refer to the same record between runs.
var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	petname.NonDeterministicMode()
}

// A stable, readable name for a pointer or channel. Nil values are named "Ø".
// Anything else is formatted with %v instead of being memoized.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr, reflect.Chan:
		if value.IsNil() {
			return "Ø"
		}
	case reflect.Map, reflect.Slice, reflect.Func:
		if value.IsNil() {
			return "Ø"
		}
		return fmt.Sprintf("%v", obj)
	default:
		return fmt.Sprintf("%v", obj)
	}

	mu.Lock()
	defer mu.Unlock()
	if name, ok := memo[obj]; ok {
		return name
	}
	name := strings.Title(petname.Adjective()) + strings.Title(petname.Name())
	memo[obj] = name
	return name
}

// Forget every name handed out so far.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
}
