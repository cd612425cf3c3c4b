package domain

import (
	"fmt"
	"strconv"
)

func FormatCustomerID(seq uint64) string {
	return fmt.Sprintf("C%04d", seq)
}

func FormatAccountNumber(seq uint64) string {
	return fmt.Sprintf("A%06d", seq)
}

func FormatTransactionID(seq uint64) string {
	return fmt.Sprintf("T%08d", seq)
}

// ParseIDSequence extracts the numeric suffix of an identifier such as
// "C0001" or "A000001". Used to seed counters from data written before
// counter records existed.
func ParseIDSequence(id string) (uint64, bool) {
	if len(id) < 2 {
		return 0, false
	}
	seq, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return seq, true
}
