package scm

import (
	"testing"

	"github.com/chengwei920412/makeprojects/internal/hostenv"
)

func TestEditNoopWithoutClient(t *testing.T) {
	// No p4 in the fake environment, so Edit must simply return.
	env := &hostenv.Fake{GOOS: "linux"}
	NewPerforce(env, true).Edit("demo.wmk")
	NewPerforce(env, false).Edit("demo.wmk")
}
