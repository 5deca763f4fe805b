/*
Package forthrt provides runtime support for Forth programs translated to Go.

A Forth to native translator turns colon definitions into ordinary functions,
stack items into cells, and leaves behind a handful of services that the
generated code still needs at run time. This package is that handful:

Data space. Forth has one linear dictionary area with a high-water mark
called "here". Generated code reserves raw byte ranges from it (ALLOT , C, 2,)
and reads or writes cells and bytes inside it. The data space has a fixed
capacity chosen when the program is built; a request that would run past it
means the program was configured wrong, so it halts the program rather than
returning an error. Nothing is ever freed, except by resetting here to an
earlier saved value.

Cells. A cell is one 32-bit word; a double cell is two of them, the high half
above the low half. Package cell defines the types and the shift based
conversions between a double cell and its halves, along with the mixed
precision multiply and divide words.

Pictured numeric output. Forth renders numbers by pushing digits onto the
tail of a fixed buffer, least significant first: <# starts, # and #S produce
digits, HOLD and SIGN add characters, and #> yields the finished string. The
buffer has a fixed capacity that is larger than any number in any base needs;
running out of it also halts the program.

Digits. The inverse of pictured output: parsing a digit character under a
numeric base, accumulating digits into a double cell (>NUMBER), and
recognizing whole number tokens. Parse failures are ordinary errors.

All of the state that a C runtime would keep in globals lives in a Runtime,
created by New and owned by one translated program. A Runtime is not safe for
concurrent use; programs needing isolation use more than one.
*/
package forthrt
