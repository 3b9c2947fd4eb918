package junit

import (
	"encoding/xml"
	"fmt"
)

type Testsuites struct {
	XMLName    xml.Name    `json:"-"                    xml:"testsuites"`
	Name       string      `json:"name,omitempty"       xml:"name,attr"`
	Testsuites []Testsuite `json:"testsuites,omitempty" xml:"testsuite"`
}

type Testsuite struct {
	XMLName   xml.Name   `json:"-"                   xml:"testsuite"`
	Name      string     `json:"name,omitempty"      xml:"name,attr"`
	Errors    string     `json:"errors,omitempty"    xml:"errors,attr"`
	Tests     string     `json:"tests,omitempty"     xml:"tests,attr"`
	Failures  string     `json:"failures,omitempty"  xml:"failures,attr"`
	Skipped   string     `json:"skipped,omitempty"   xml:"skipped,attr"`
	Time      string     `json:"time,omitempty"      xml:"time,attr"`
	Timestamp string     `json:"timestamp,omitempty" xml:"timestamp,attr"`
	TestCases []TestCase `json:"testcases,omitempty" xml:"testcase"`
}

type TestCase struct {
	XMLName   xml.Name  `json:"-"                    xml:"testcase"`
	ClassName string    `json:"class_name,omitempty" xml:"classname,attr"`
	File      string    `json:"file,omitempty"       xml:"file,attr"`
	Name      string    `json:"name,omitempty"       xml:"name,attr"`
	Time      string    `json:"time,omitempty"       xml:"time,attr"`
	SystemOut string    `json:"system_out,omitempty" xml:"system-out"`
	Failure   *Message  `json:"failure,omitempty"    xml:"failure"`
	Error     *Message  `json:"error,omitempty"      xml:"error"`
	Skipped   *struct{} `json:"skipped,omitempty"    xml:"skipped"`
}

type Message struct {
	Message string `json:"message,omitempty" xml:"message,attr"`
	Type    string `json:"type,omitempty"    xml:"type,attr"`
	Content string `json:"content,omitempty" xml:",chardata"`
}

// Summary counts the outcome of every test case of a report.
type Summary struct {
	Suites   int
	Tests    int
	Failures int
	Errors   int
	Skipped  int
}

// ParseRawLogs casts a raw XML JUnit report (as byte) into its test suites. Both a single
// <testsuite> root and a <testsuites> wrapper are accepted.
func ParseRawLogs(data []byte) ([]Testsuite, error) {
	var probe struct {
		XMLName xml.Name
	}
	if err := xml.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch probe.XMLName.Local {
	case "testsuites":
		suites := Testsuites{}
		if err := xml.Unmarshal(data, &suites); err != nil {
			return nil, err
		}
		return suites.Testsuites, nil
	case "testsuite":
		suite := Testsuite{}
		if err := xml.Unmarshal(data, &suite); err != nil {
			return nil, err
		}
		return []Testsuite{suite}, nil
	default:
		return nil, fmt.Errorf("unexpected root element <%s> in JUnit report", probe.XMLName.Local)
	}
}

// Summarize computes the Summary of a raw JUnit report from its test cases, ignoring the
// counters declared on the suites.
func Summarize(data []byte) (Summary, error) {
	suites, err := ParseRawLogs(data)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Suites: len(suites)}
	for _, suite := range suites {
		for _, testCase := range suite.TestCases {
			summary.Tests++
			switch {
			case testCase.Failure != nil:
				summary.Failures++
			case testCase.Error != nil:
				summary.Errors++
			case testCase.Skipped != nil:
				summary.Skipped++
			}
		}
	}

	return summary, nil
}
