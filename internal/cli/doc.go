// Package cli implements pwcheck, a one-shot command that rates a password
// and looks it up in the breach corpus, or prints a generated password.
package cli
