// Package convert implements run-time conversion between values of any two
// kinds.
//
// Every ordered pair of kinds is classified once by Dispatch into a Strategy
// and backed by one immutable Converter. The table of converters is built
// lazily on first use of Default and shared by all goroutines afterwards.
//
// Failed conversions never abort the caller: the destination is left
// unchanged, the failure is logged on the runtime domain and returned as a
// *ConversionError, whose Status tells overflow, ambiguous input and
// unsupported pairs apart.
package convert
