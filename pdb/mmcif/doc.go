// Package mmcif reads a file in mmcif/cif format.
// Reading mmcif files is interesting because they are so big,
// but we do not want much information from them.
// If one looks at the format there are some features that make it
// simpler.
// 1. The first character on the line is decisive. If it is a data item
// it has to be a "_". A loop starts with loop_
// 2. Everything we are not interested in can be skipped line by line,
// without splitting it into words.
//
// We only keep the data items and tables asked for. The coordinate
// table is one of the biggest, and is skipped like anything else that
// was not asked for.
//
// Notes about the mmcif format...
// A question mark, ?, means a missing value.
// A dot, ., means not appropriate or deliberately left out.
// A category with only one row is usually not written as a loop, but as
// a list of data items, one per line. We turn these into one-row tables
// so the caller does not have to care.
package mmcif
