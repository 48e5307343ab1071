// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a sane console encoder writing to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Infof, ErrorKV, etc.).
//
// Commands accept a context and extract the logger from it, enabling
// scoped, structured logging without polluting stdout, which is reserved
// for tables and confirmations.
package logger
