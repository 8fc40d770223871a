// Package generator expands {{type:params}} tokens into string variants.
//
// A string may hold any number of non-nested tokens. Each token expands to a
// list of values and the string expands to the cartesian product of all of
// them, left to right, with the literal text kept in place:
//
//	"day_{{int:start=1;stop=3;pad=2}}{{alpha:start=a;stop=b}}"
//	  -> day_01a day_01b day_02a day_02b day_03a day_03b
//
// The closed set of generator kinds is int, alpha, date and enum.
// EstimateCount returns the size of the product without building it, so
// callers can refuse pathological templates before expanding them.
package generator
