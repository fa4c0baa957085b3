package logger

// Logger is the logging interface shared by the REST API and the CLI.
// Arguments are concatenated into a single message, fmt.Sprint style.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
