package sqlite3

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	connCounter uint64
	stmtCounter uint64
	rowsCounter uint64
)

func nextConnID() string {
	return fmt.Sprintf("sqlite3-conn-%d", atomic.AddUint64(&connCounter, 1))
}

func nextStmtID() string {
	return fmt.Sprintf("sqlite3-stmt-%d", atomic.AddUint64(&stmtCounter, 1))
}

func nextRowsID() string {
	return fmt.Sprintf("sqlite3-rows-%d", atomic.AddUint64(&rowsCounter, 1))
}

// nextTxID uses a random uuid rather than a counter, matching the
// original async_driver's use of uuid::Uuid::new_v4() for transaction
// identity — transactions are rarer and longer-lived than statements or
// result sets, so collision-proof randomness matters more than a tight
// sequential id.
func nextTxID() string {
	return uuid.NewString()
}
