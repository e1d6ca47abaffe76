// Package normalize turns raw API payloads into uniform row sets.
//
// One pure function per endpoint. Normalizers never perform I/O and are
// deterministic: the same payload always yields the same rows or the same
// *Error. They fail closed — a missing field, an echoed foreign symbol, or
// a kline row with the wrong arity is an error, never a silent default.
//
// An empty result (zero trades, empty book) is valid and yields zero rows
// without error; short-circuiting the write is the caller's job.
package normalize
