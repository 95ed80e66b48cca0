// Package errors provides coded, actionable errors for the rerender
// commands and hosts.
//
// Each error has a code (e.g. "R041") registered with a category, a short
// message and an explanation. Call sites add what they know:
//
//	err := errors.New("R041").
//	    WithDetail(`server.address "localhost" has no port`).
//	    WithSuggestion(`Use host:port, for example ":8080"`)
//
//	fmt.Print(err.Format())
//	// ERROR R041: Invalid server address
//	//
//	//   server.address "localhost" has no port
//	//
//	//   Hint: Use host:port, for example ":8080"
//
// Codes compare with errors.Is, so callers can match a category of failure
// without inspecting messages.
package errors
