package common

import (
	"fmt"
	"os"
	"strings"
)

func IsExist(f string) bool {
	_, err := os.Stat(f)
	return err == nil || os.IsExist(err)
}

func JoinErrors(errs ...error) error {
	str := make([]string, 0, len(errs))

	for _, v := range errs {
		if v != nil {
			str = append(str, v.Error())
		}
	}
	if len(str) == 0 {
		return nil
	}

	return fmt.Errorf("%v", strings.Join(str, ";"))
}

// OpenLogFile opens name for appending, creating it when needed.
func OpenLogFile(name string) (*os.File, error) {
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
