package sqtest

import (
	"os"
	"strings"
	"sync"
	"testing"

	log "github.com/sirupsen/logrus"
)

///////////////////////////////////////
//This package is for common test utilities used in SQVERIFY
//
///////////////////////////////////////

var doOnce sync.Once

// TestInit initializes logging for tests
func TestInit(logname string) {
	doOnce.Do(func() {
		// setup logging
		logFile, err := os.OpenFile(logname, os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			panic(err)
		}
		mode := os.Getenv("SQVERIFY_MODE")
		if mode == "DEBUG" {
			log.SetLevel(log.DebugLevel)
			log.SetOutput(os.Stdout)
		} else {
			log.SetOutput(logFile)

		}
	})
}

// CheckErr compares an error against the expected error string. It returns
// true when the test case is settled one way or the other and the caller
// should return.
func CheckErr(t *testing.T, err error, expErr string) bool {
	t.Helper()

	if err != nil {
		if expErr == "" {
			t.Errorf("Unexpected Error in test: %s", err)
			return true
		}
		if err.Error() != expErr {
			t.Errorf("Expecting Error %s but got: %s", expErr, err)
		}
		return true
	}
	if expErr != "" {
		t.Errorf("Expecting Error %s but got no error", expErr)
		return true
	}
	return false
}

// PanicTestRecovery must be deferred at the start of a test that may
// panic. An empty expPanic means no panic is expected.
func PanicTestRecovery(t *testing.T, expPanic string) {
	t.Helper()

	r := recover()
	if r == nil {
		if expPanic != "" {
			t.Errorf("Expecting panic %q but test did not panic", expPanic)
		}
		return
	}
	if expPanic == "" {
		t.Errorf("Unexpected panic in test: %v", r)
		return
	}
	msg := ""
	switch p := r.(type) {
	case string:
		msg = p
	case error:
		msg = p.Error()
	default:
		t.Errorf("Panic is not a string or error: %v", r)
		return
	}
	if !strings.Contains(msg, expPanic) {
		t.Errorf("Expecting panic %q but got: %s", expPanic, msg)
	}
}
