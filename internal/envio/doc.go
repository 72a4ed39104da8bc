// Package envio moves .env text between the outside world and the dotenv
// core. Input comes from a named file or from piped stdin. Output goes back
// to the named file through an atomic temp-file-and-rename, or to stdout
// when no file was given. An optional advisory lock serializes cooperating
// envq processes editing the same file.
package envio
