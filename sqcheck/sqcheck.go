package sqcheck

import (
	"context"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/wilphi/sqverify/sqcap"
)

// Checker runs the capability and behavior checks for one engine and
// writes a human readable report to out.
type Checker struct {
	out    io.Writer
	engine sqcap.EngineID
}

// checks are run in order. Every check runs even after a failure so the
// report is complete; the results are combined with AND.
var checks = []struct {
	Name string
	Exec func(*Checker, context.Context) bool
}{
	{Name: "transaction methods and workload", Exec: (*Checker).CheckEngine},
	{Name: "adapter configuration", Exec: func(c *Checker, _ context.Context) bool { return c.CheckProfiles() }},
}

// NewChecker creates a Checker for the given engine
func NewChecker(out io.Writer, engine sqcap.EngineID) *Checker {
	return &Checker{out: out, engine: engine}
}

// Run executes all checks and returns the combined result
func (c *Checker) Run(ctx context.Context) bool {
	cap, ok := sqcap.Get(c.engine)
	if !ok {
		c.fail("unknown engine: %s", c.engine)
		return false
	}

	fmt.Fprintf(c.out, "Verifying %s Transaction Support\n", cap.Name)
	c.banner()

	success := true
	for _, chk := range checks {
		log.Infof("Running check: %s", chk.Name)
		ok := chk.Exec(c, ctx)
		if !ok {
			log.Warnf("Check failed: %s", chk.Name)
		}
		success = ok && success
	}

	fmt.Fprintln(c.out)
	c.banner()
	if success {
		fmt.Fprintf(c.out, "All checks passed. %s transaction support is working.\n", cap.Name)
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Next steps:")
		fmt.Fprintln(c.out, "1. Run the workload against a persistent database file")
		fmt.Fprintln(c.out, "2. Verify concurrent task execution under load")
		fmt.Fprintln(c.out, "3. Monitor for any performance impact")
	} else {
		fmt.Fprintln(c.out, "Some checks failed. Please check the report above.")
	}
	return success
}

func (c *Checker) banner() {
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
}

func (c *Checker) section(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "\n"+format+"\n", args...)
}

func (c *Checker) pass(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "✓ "+format+"\n", args...)
}

func (c *Checker) fail(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "✗ "+format+"\n", args...)
	log.Warnf(format, args...)
}
