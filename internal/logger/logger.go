package logger

// Logger is the logging contract used across the application. Every
// message names the emitting component and carries structured fields.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Nop discards all output. Used by tests and the headless CLI when
// quiet mode is requested.
type Nop struct{}

func NewNop() *Nop { return &Nop{} }

func (*Nop) Debug(string, string, map[string]interface{}) {}

func (*Nop) Info(string, string, map[string]interface{}) {}

func (*Nop) Warning(string, string, map[string]interface{}) {}

func (*Nop) Error(string, error, map[string]interface{}) {}
