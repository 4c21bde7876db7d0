package gen_ids

import (
	"fmt"
	"sync"
	"time"
)

// SATIM caps orderNumber at 10 characters: yyMMdd plus a daily sequence.
const seqLen = 4

type ObID struct {
	mu       sync.Mutex
	LatestId int64
	Date     string
	MaxLen   int
	now      func() time.Time
}

func NewObID() *ObID {
	return &ObID{LatestId: 1, MaxLen: seqLen, now: time.Now}
}

var orderNumbers = NewObID()

// GetId returns the next id of the day and restarts the sequence at midnight.
// After 9999 ids in a day the sequence widens and the id outgrows 10 chars.
func (ob *ObID) GetId() string {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	date := ob.now().Format("060102")
	if ob.Date != date {
		ob.Date = date
		ob.LatestId = 1
	}
	data := ob.LatestId
	ob.LatestId++

	return date + fmt.Sprintf("%0*d", ob.MaxLen, data)
}

func GetIdOrderNumber() string {
	return orderNumbers.GetId()
}
