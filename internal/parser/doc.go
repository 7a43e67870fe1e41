// Package parser turns cleaned résumé text into a draft ResumeRecord.
//
// Every function here is pure: no I/O, no logging and no shared state,
// so the stages can run concurrently for independent inputs. Parsers
// never fail on malformed text; an unrecognized section yields an empty
// result.
package parser
