package client

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Message types
const (
	MessageTrace   = "TRACE"
	MessageInfo    = "INFO"
	MessageWarning = "WARNING"
	MessageError   = "ERROR"
	MessageSuccess = "SUCCESS"
	MessageFailure = "FAILURE"
)

// Message is a diagnostic line for the user
type Message struct {
	Time    time.Time
	Type    string
	Message string
}

// NewMessage creates a new Message
func NewMessage(mtype string, message string) *Message {
	return &Message{
		Time:    time.Now(),
		Type:    mtype,
		Message: message,
	}
}

// Log hosts diagnostics for the client
type Log struct {
	out    io.Writer
	trace  bool
	pretty bool
}

// NewLog creates a new Log writing to out. With pretty, messages are
// colored and spinners are shown (use it for terminals only).
func NewLog(out io.Writer, trace bool, pretty bool) *Log {
	return &Log{
		out:    out,
		trace:  trace,
		pretty: pretty,
	}
}

// Writer returns the destination of the log (tables, listings)
func (log *Log) Writer() io.Writer {
	return log.out
}

// Log is a low-level function for sending a Message
func (log *Log) Log(message *Message) {
	if message.Type == MessageTrace && !log.trace {
		return
	}

	if message.Type == MessageInfo {
		fmt.Fprintln(log.out, message.Message)
		return
	}

	prefix := message.Type
	if log.pretty {
		prefix = messageColor(message.Type).Sprint(prefix)
	}
	fmt.Fprintf(log.out, "%s: %s\n", prefix, message.Message)
}

func messageColor(mtype string) *color.Color {
	switch mtype {
	case MessageTrace:
		return color.New(color.FgHiBlack)
	case MessageWarning:
		return color.New(color.FgHiYellow)
	case MessageError, MessageFailure:
		return color.New(color.FgHiRed)
	case MessageSuccess:
		return color.New(color.FgHiGreen)
	}
	return color.New(color.Reset)
}

// Spin shows a spinner with subject until the returned func is called
func (log *Log) Spin(subject string) func() {
	if !log.pretty {
		log.Info(subject)
		return func() {}
	}

	s := spinner.New(spinner.CharSets[37], 200*time.Millisecond)
	s.Writer = log.out
	s.Suffix = " " + subject
	s.Start()
	return s.Stop
}

// Error sends a MessageError Message
func (log *Log) Error(message string) {
	log.Log(NewMessage(MessageError, message))
}

// Errorf sends a formated string MessageError Message
func (log *Log) Errorf(format string, args ...interface{}) {
	log.Error(fmt.Sprintf(format, args...))
}

// Warning sends a MessageWarning Message
func (log *Log) Warning(message string) {
	log.Log(NewMessage(MessageWarning, message))
}

// Warningf sends a formated string MessageWarning Message
func (log *Log) Warningf(format string, args ...interface{}) {
	log.Warning(fmt.Sprintf(format, args...))
}

// Info sends an MessageInfo Message
func (log *Log) Info(message string) {
	log.Log(NewMessage(MessageInfo, message))
}

// Infof sends a formated string MessageInfo Message
func (log *Log) Infof(format string, args ...interface{}) {
	log.Info(fmt.Sprintf(format, args...))
}

// Trace sends an MessageTrace Message
func (log *Log) Trace(message string) {
	log.Log(NewMessage(MessageTrace, message))
}

// Tracef sends a formated string MessageTrace Message
func (log *Log) Tracef(format string, args ...interface{}) {
	log.Trace(fmt.Sprintf(format, args...))
}

// Success sends an MessageSuccess Message
func (log *Log) Success(message string) {
	log.Log(NewMessage(MessageSuccess, message))
}

// Successf sends a formated string MessageSuccess Message
func (log *Log) Successf(format string, args ...interface{}) {
	log.Success(fmt.Sprintf(format, args...))
}

// Failure sends an MessageFailure Message
func (log *Log) Failure(message string) {
	log.Log(NewMessage(MessageFailure, message))
}

// Failuref sends a formated string MessageFailure Message
func (log *Log) Failuref(format string, args ...interface{}) {
	log.Failure(fmt.Sprintf(format, args...))
}
