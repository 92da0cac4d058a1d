package main

import (
	"errors"
	"fmt"
	"strconv"
)

// parseInt parses a decimal 32-bit integer argument, rejecting any stray character
func parseInt(arg string) (int, error) {
	v, err := strconv.ParseInt(arg, 10, 32)
	if err == nil {
		return int(v), nil
	}

	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%s: numerical result out of range", arg)
	}
	for i, ch := range arg {
		if (ch >= '0' && ch <= '9') || (i == 0 && (ch == '-' || ch == '+')) {
			continue
		}
		return 0, fmt.Errorf("%s: an irregular character '%c' is detected", arg, ch)
	}
	return 0, fmt.Errorf("%s: not a number", arg)
}

// parsePositive parses an integer argument that must be greater than zero
func parsePositive(name, arg string) (int, error) {
	v, err := parseInt(arg)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, v)
	}
	return v, nil
}
