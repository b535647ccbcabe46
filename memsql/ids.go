package memsql

import (
	"fmt"
	"sync/atomic"
)

var connCounter uint64

func nextConnID() string {
	return fmt.Sprintf("memsql-conn-%d", atomic.AddUint64(&connCounter, 1))
}
