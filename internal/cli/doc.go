// Package cli is the terminal front end of Fridok.
//
// App drives every feature from a line-oriented menu read from an io.Reader
// and written to an io.Writer, so the same code serves a real terminal and
// scripted tests. It holds no quiz rules of its own; everything goes through
// service.QuizService and the domain packages.
package cli
