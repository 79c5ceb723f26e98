// Package sumpad is a natural-language expression engine: it evaluates
// lines of loosely structured text ("20% tip on $85", "5 km in miles",
// "price = 42") into typed numeric results with units, currency
// conversion and localized display.
//
// The engine is a pure library: every call re-evaluates the whole
// document against an explicit Options value (keyword bundle + rate-table
// snapshot), keeps no state between calls, and captures all failures per
// line. See EvaluateDocument, Tokenize, Convert and Format for the main
// entry points.
package sumpad

// Version is the engine version reported by the CLI.
const Version = "0.3.0"
