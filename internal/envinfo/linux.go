package envinfo

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

var osOpen = os.Open
var unameFunc = uname

func readOSRelease(info *Snapshot) error {
	file, err := osOpen("/etc/os-release")
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := parts[0]
		value := strings.Trim(parts[1], "\"")

		switch key {
		case "ID":
			info.Distribution = strings.ToLower(value)
		case "PRETTY_NAME":
			info.PrettyName = value
		}
	}

	if info.Distribution == "" {
		info.Distribution = "unknown"
	}

	return scanner.Err()
}

func uname() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}

// WSL kernels carry "microsoft" in the release string.
func detectWSL() bool {
	release, err := unameFunc()
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(release), "microsoft")
}
