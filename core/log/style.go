// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Style provides customization for printing messages.
type Style struct {
	Name      string        // Name of the style.
	Timestamp bool          // If true, the timestamp will be printed if part of the message.
	Tag       bool          // If true, the tag will be printed if part of the message.
	Trace     bool          // If true, the trace will be printed if part of the message.
	Severity  SeverityStyle // How the severity of the message will be printed.
}

// SeverityStyle is an enumerator of ways that severities can be printed.
type SeverityStyle int

const (
	// NoSeverity is the option to disable the printing of the severity.
	NoSeverity = SeverityStyle(iota)
	// SeverityShort is the option to display the severity as a single character.
	SeverityShort
	// SeverityLong is the option to display the severity in its full name.
	SeverityLong
)

func (ss SeverityStyle) print(s Severity) string {
	if ss == SeverityShort {
		return s.Short()
	}
	return s.String()
}

var (
	// Raw is a style that only prints the text of the message.
	Raw = Style{Name: "raw"}

	// Brief is a style that only prints the text and short severity of the
	// message.
	Brief = Style{Name: "brief", Severity: SeverityShort}

	// Normal is a style that prints the timestamp, tag, trace and short
	// severity.
	Normal = Style{Name: "normal", Timestamp: true, Tag: true, Trace: true, Severity: SeverityShort}

	// Detailed is a style that prints the timestamp, tag, trace and long
	// severity.
	Detailed = Style{Name: "detailed", Timestamp: true, Tag: true, Trace: true, Severity: SeverityLong}

	styles = []Style{Raw, Brief, Normal, Detailed}
)

func (s Style) String() string { return s.Name }

// Set selects a registered style by name. It allows Style to be used as a
// flag.Value.
func (s *Style) Set(name string) error {
	for _, st := range styles {
		if st.Name == name {
			*s = st
			return nil
		}
	}
	return errors.Errorf("unknown log style %q", name)
}

// Handler returns a new Handler that writes messages formatted with s to w.
func (s Style) Handler(w Writer) Handler {
	return NewHandler(func(msg *Message) { w(s.Print(msg), msg.Severity) }, nil)
}

// Print returns the message msg printed with the style s.
func (s Style) Print(msg *Message) string {
	m := make([]string, 0, 5)
	if s.Timestamp && !msg.Time.IsZero() {
		m = append(m, HHMMSSsss(msg.Time))
	}
	if s.Severity != NoSeverity {
		m = append(m, s.Severity.print(msg.Severity)+":")
	}
	if s.Trace && len(msg.Trace) > 0 {
		m = append(m, fmt.Sprintf("%v", msg.Trace))
	}
	if s.Tag && msg.Tag != "" {
		m = append(m, fmt.Sprintf("[%s]", msg.Tag))
	}
	m = append(m, msg.Text)
	return strings.Join(m, " ")
}

// HHMMSSsss prints the time as a HH:MM:SS.sss
func HHMMSSsss(t time.Time) string {
	return fmt.Sprintf("%.2d:%.2d:%.2d.%.3d", t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1e6)
}
