package procstatus

import "regexp"

var processIDPattern = regexp.MustCompile(`js-process-id-(\d+)`)

// ParseProcessID extracts N from a class list containing "js-process-id-N".
func ParseProcessID(class string) (string, bool) {
	m := processIDPattern.FindStringSubmatch(class)
	if m == nil {
		return "", false
	}
	return m[1], true
}
