// Package rttest provides an interface for the testing helpers in this
// repo to use in place of *testing.T, so that they themselves can be
// tested with mock implementations.
package rttest

// TestingT is the subset of testing.T used by the helpers under
// go/testutils. *testing.T satisfies it, as does require.TestingT.
type TestingT interface {
	Cleanup(func())
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fail()
	FailNow()
	Failed() bool
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Helper()
	Log(args ...interface{})
	Logf(format string, args ...interface{})
	Name() string
	Skip(args ...interface{})
	SkipNow()
	Skipf(format string, args ...interface{})
	Skipped() bool
	TempDir() string
}
