// Package dotenv parses and edits .env files without disturbing the lines it
// does not touch. Parse turns raw text into a Document holding a header (the
// comment block before the first key) and an ordered list of entries. The
// Document exposes lookups and targeted mutations, and String renders it back
// so that an unmodified parse reproduces its input byte for byte.
package dotenv
