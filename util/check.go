package util

import "log"

// Check aborts the process on a startup error.
func Check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
