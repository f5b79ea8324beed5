package q32

// Every function in the package chops its intermediate results, and
// the exact bits depend on the order of the operations, the iteration
// counts and the constants. Accuracy tests can't notice when any of
// those change, so we also keep golden tables with the raw outputs of
// each function for a fixed set of inputs, compared bit by bit in
// testdata_test.go. The tables must be regenerated (and reviewed!)
// whenever an algorithm is modified on purpose.
//
// Running the tests with -tags q32wide also checks that the default
// and the widening multiplication backends are bit-identical.

//go:generate go run -tags "GENERATE_Q32_TESTDATA" test/generate/golden/golden.go
