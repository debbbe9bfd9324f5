package service

import (
	"strings"
)

// Pure input predicates. The exact failure messages built on top of them are
// part of the presentation contract and live with the operations.

func validPatronID(id string) bool {
	return allDigits(id, 6)
}

func validISBN(isbn string) bool {
	return allDigits(isbn, 13)
}

func allDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

const transactionIDPrefix = "txn_"

func validTransactionID(id string) bool {
	return strings.HasPrefix(id, transactionIDPrefix) && len(id) > len(transactionIDPrefix)
}
