package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names, memoized so the
// same pointer keeps its name for the life of the process. The memo leaks by
// design; it only grows while something is actively dumping debug output.
// Names are handed out nondeterministically as a reminder that "WackyOtter"
// is not the same vertex it was last run.

var (
	mu   sync.Mutex
	memo = map[interface{}]string{}
)

func init() {
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if v := reflect.ValueOf(obj); !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
