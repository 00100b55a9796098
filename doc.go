/*
Package flagx is a small, typed command-line flag parser with single-dash flags.

It deliberately doesn't follow POSIX/GNU conventions: there is no clustering of short options, and no
'--long=value' double-dash form. Every flag is '-name', values come inline as '-name=value' or as the
next argument, and scanning stops at the first non-flag token so positional arguments are always a
contiguous tail. If you want POSIX semantics, use [pflag] instead; this package exists for tools that
follow the plan9/Go style of flag handling.

A few policies shape the API:

  - Parsing contexts are explicit. A [FlagSet] is a constructed object; the package-level [Default]
    instance is only a convenience wrapper for the common one-context program.
  - Registration mistakes panic, user-input mistakes return errors. An unknown flag on the command
    line is a [*ParseError]; registering the same name twice, or an inverted [FlagSet.Range], is a
    defect in the program and fails fast.
  - The parser never prints and never exits. Every failure comes back as a value carrying the flag
    name and failure kind; printing usage and choosing an exit code belong to the caller.
  - Storage handles are plain typed pointers, the same shape as the standard flag package's, and the
    ...Var forms bind caller-owned storage symmetrically.

# Scanning

[FlagSet.Parse] makes a single left-to-right pass. The first token without a leading dash ends the
scan and starts the rest arguments, which alias a suffix of the input vector. A '--' token ends the
scan explicitly. An occurrence written as '-/name' is parsed and fully validated but its effect is
discarded, which makes it cheap to "comment out" a flag in a long command line without deleting it.

Value-bearing flags take their value from '-name=value' or from the next argument. Boolean flags take
no value at all; naming one sets it to true.

# Sizes

Byte-count flags registered with [FlagSet.Size] accept dd-style suffixes through the
[github.com/saylorsolutions/flagx/sizes] subpackage: decimal kB/MB/GB/... (powers of 1000) and binary
K/KiB/M/MiB/... (powers of 1024).

[pflag]: https://github.com/spf13/pflag
*/
package flagx
