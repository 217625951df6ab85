// Package hook implements the host's hook protocol: one JSON object in on
// stdin, one JSON verdict out on stdout, and an exit code that mirrors it.
//
// Validators are fail-open. Any error or panic raised while evaluating a hook
// becomes a "continue" verdict carrying the error text, so a defect in a
// validator can never wedge the host session.
package hook
