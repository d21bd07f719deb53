// Package http contains the HTTP boundary of the analytics service. It
// translates external requests into service operations and internal
// error kinds into uniform response shapes; no business logic lives
// here.
package http
