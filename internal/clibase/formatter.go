package clibase

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	loggerNameField  = "logger"
	recordDateLayout = "[2006-01-02][15:04:05]"
)

// RecordFormatter renders entries as
//
//	[YYYY-MM-DD][HH:MM:SS][name][LEVEL] message key=value ...
type RecordFormatter struct {
	Name string
}

// Format implements logrus.Formatter
func (f *RecordFormatter) Format(entry *log.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	b.WriteString(entry.Time.Format(recordDateLayout))
	fmt.Fprintf(b, "[%s][%s] %s", f.Name, levelName(entry.Level), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%s", k, fieldValue(entry.Data[k]))
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}

func levelName(level log.Level) string {
	if level == log.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(level.String())
}

func fieldValue(v interface{}) string {
	var s string
	switch val := v.(type) {
	case error:
		s = val.Error()
	case string:
		s = val
	default:
		s = fmt.Sprint(val)
	}
	if strings.ContainsAny(s, " \t\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
