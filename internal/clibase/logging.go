package clibase

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
	"github.com/spf13/pflag"
)

const (
	logDefaultDir     = "logs"
	logDefaultLevel   = "info"
	logFileDateLayout = "2006-01-02"
	logFlagDirName    = "log-dir"
	logFlagFormatName = "log-format"
	logFlagLevelName  = "log-level"
	logTextFormatName = "text"
	logJSONFormatName = "json"
)

var (
	logFormats = map[string]func(name string) log.Formatter{
		logJSONFormatName: func(name string) log.Formatter { return &log.JSONFormatter{} },
		logTextFormatName: func(name string) log.Formatter { return &RecordFormatter{Name: name} },
	}
	logDefaultFormat = logTextFormatName

	// ErrorLogInitFailure is the error logged when the initial log configuration setup fails
	ErrorLogInitFailure = fmt.Errorf("failure during logging init")
	// ErrorLogLevelParse is the error logged when the specified log level cannot be parsed
	ErrorLogLevelParse = fmt.Errorf("unable to parse specified log level")
	// ErrorLogUnknownFormat is the error logged when an unrecognized log format is specified
	ErrorLogUnknownFormat = fmt.Errorf("unknown log format specified")
	// ErrorLogFileOpen is returned when the daily log file (or its directory) cannot be created
	ErrorLogFileOpen = fmt.Errorf("unable to open log file")
)

// LogSettings holds the values of the log flags
type LogSettings struct {
	Dir    string
	Format string
	Level  string
}

func init() {
	// Set the initial logger configuration (used for any messages logged before flags can change the config)
	if err := configureLogging(getLogSettings()); err != nil {
		log.Error(ErrorLogInitFailure.Error())
	}

	log.SetOutput(io.Discard) // Send all logs to nowhere by default
	log.AddHook(&writer.Hook{ // Send logs with level higher than warning to stderr
		Writer: os.Stderr,
		LogLevels: []log.Level{
			log.PanicLevel,
			log.FatalLevel,
			log.ErrorLevel,
			log.WarnLevel,
		},
	})
	log.AddHook(&writer.Hook{ // Send info, debug, and trace logs to stdout
		Writer: os.Stdout,
		LogLevels: []log.Level{
			log.InfoLevel,
			log.DebugLevel,
			log.TraceLevel,
		},
	})
}

func addLogFlags(flags *pflag.FlagSet) {
	logFlags := &pflag.FlagSet{}

	formats := make([]string, 0, len(logFormats))
	for k := range logFormats {
		formats = append(formats, k)
	}
	logFlags.String(logFlagDirName, logDefaultDir, "Directory the daily log files are written to")
	logFlags.String(logFlagFormatName, logDefaultFormat, fmt.Sprintf("The log format (valid values are: %s)", strings.Join(formats, ", ")))
	logFlags.String(logFlagLevelName, logDefaultLevel, "The log level (trace, debug, info, warn, err, fatal)")

	flags.AddFlagSet(logFlags)
}

// LogSettingsFromFlags reads the log flags added by the root command
func LogSettingsFromFlags(flags *pflag.FlagSet) (LogSettings, error) {
	var settings LogSettings
	var err error

	if settings.Dir, err = flags.GetString(logFlagDirName); err != nil {
		return settings, err
	}
	if settings.Format, err = flags.GetString(logFlagFormatName); err != nil {
		return settings, err
	}
	if settings.Level, err = flags.GetString(logFlagLevelName); err != nil {
		return settings, err
	}
	return settings, nil
}

func getLogSettings() (logFormat, logLevel string) {
	level, isDefined := os.LookupEnv("LOG_LEVEL")
	if !isDefined {
		level = logDefaultLevel
	}
	format, isDefined := os.LookupEnv("LOG_FORMAT")
	if !isDefined {
		format = logDefaultFormat
	}
	return format, level
}

func configureLogging(logFormat, logLevel string) error {
	log.WithFields(log.Fields{
		"current.log.level":    log.GetLevel(),
		"submitted.log.format": logFormat,
		"submitted.log.level":  logLevel,
	}).Trace("configureLogging START")

	if _, ok := logFormats[logFormat]; !ok {
		log.WithFields(log.Fields{
			"submitted.log.format": logFormat,
		}).Error(ErrorLogUnknownFormat.Error())
		return ErrorLogUnknownFormat
	}
	// The diagnostics logger keeps logrus' own text layout; the record layout is for log files.
	if logFormat == logJSONFormatName {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{})
	}

	logLevelParsed, err := log.ParseLevel(logLevel)
	if err != nil {
		log.WithFields(log.Fields{
			"error":               err,
			"submitted.log.level": logLevel,
		}).Error(ErrorLogLevelParse.Error())
		return err
	}
	log.SetLevel(logLevelParsed)

	log.WithFields(log.Fields{
		"current.log.level":    log.GetLevel(),
		"submitted.log.format": logFormat,
		"submitted.log.level":  logLevel,
	}).Trace("configureLogging END")
	return nil
}

// LogFilePath returns the path of the log file for the day containing now
func LogFilePath(dir string, now time.Time) string {
	return filepath.Join(dir, now.Format(logFileDateLayout)+".log")
}

// NewFileLogger opens (or creates) the daily log file under settings.Dir and returns a logger
// that writes only to it. The caller owns the returned closer.
func NewFileLogger(settings LogSettings, name string, now time.Time) (*log.Logger, io.Closer, error) {
	newFormatter, ok := logFormats[settings.Format]
	if !ok {
		return nil, nil, ErrorLogUnknownFormat
	}
	level, err := log.ParseLevel(settings.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrorLogLevelParse, err)
	}

	if err := os.MkdirAll(settings.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrorLogFileOpen, err)
	}
	fpath := LogFilePath(settings.Dir, now)
	fh, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrorLogFileOpen, err)
	}

	logger := log.New()
	logger.SetOutput(fh)
	logger.SetLevel(level)
	formatter := newFormatter(name)
	if _, isJSON := formatter.(*log.JSONFormatter); isJSON {
		logger.AddHook(loggerNameHook(name))
	}
	logger.SetFormatter(formatter)

	return logger, fh, nil
}

// loggerNameHook tags every JSON record with the logger name
type loggerNameHook string

func (h loggerNameHook) Levels() []log.Level {
	return log.AllLevels
}

func (h loggerNameHook) Fire(entry *log.Entry) error {
	entry.Data[loggerNameField] = string(h)
	return nil
}
