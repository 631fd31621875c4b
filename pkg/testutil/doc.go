// Package testutil provides utilities for testing mint components.
//
// Key components:
//   - TestEnvironment: points XDG directories at a temp dir and clears the
//     MINT_* and NO_COLOR variables so tests never see the user's setup
//   - CreateFile, CreateDir: small file helpers that fail the test on error
//
// Usage guidelines:
//   - Create the environment first thing in a test; subtests share it
//   - Tests using it must not run in parallel, as they change the process
//     environment
package testutil
