package sqerr_test

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/wilphi/sqverify/sqerr"
)

func TestMain(m *testing.M) {
	// setup logging
	logFile, err := os.OpenFile("sqerr_test.log", os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		panic(err)
	}
	log.SetOutput(logFile)

	os.Exit(m.Run())

}
func testErrsFunc(err error, expected string) func(*testing.T) {
	return func(t *testing.T) {
		if err.Error() != expected {
			t.Error(fmt.Sprintf("Expecting Error %s but got: %s", expected, err.Error()))
		}
	}
}
func TestSQErrs(t *testing.T) {

	t.Run("Error type test", testErrsFunc(sqerr.New("Test Error"), "Error: Test Error"))
	t.Run("Error format test", testErrsFunc(sqerr.Newf("Test %s %d", "Error", 1), "Error: Test Error 1"))
	t.Run("Capability type test", testErrsFunc(sqerr.NewCapability("Test Error"), "Capability Error: Test Error"))
	t.Run("Capability format test", testErrsFunc(sqerr.NewCapabilityf("begin missing on %s", "duckdb"), "Capability Error: begin missing on duckdb"))
	t.Run("Workload type test", testErrsFunc(sqerr.NewWorkload("Test Error"), "Workload Error: Test Error"))
	t.Run("Workload format test", testErrsFunc(sqerr.NewWorkloadf("insert failed: %s", "boom"), "Workload Error: insert failed: boom"))
	t.Run("Config type test", testErrsFunc(sqerr.NewConfig("Test Error"), "Config Error: Test Error"))
	t.Run("Config format test", testErrsFunc(sqerr.NewConfigf("concurrent_tasks = %d", 1), "Config Error: concurrent_tasks = 1"))
	t.Run("Internal type test", testErrsFunc(sqerr.NewInternal("Test Error"), "Internal Error: Test Error"))
	t.Run("Internal format test", testErrsFunc(sqerr.NewInternalf("bad state %d", 7), "Internal Error: bad state 7"))

}
