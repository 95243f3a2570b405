package main

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
)

/* intMapper decodes integers in the given base, base 0 accepts 0x/0o/0b prefixes */
type intMapper struct {
	base int
}

func (h intMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	err := ctx.Scan.PopValueInto("int", &value)
	if err != nil {
		return err
	}

	var i int64
	if h.base == 16 {
		v, err := parseHex(value)
		if err != nil {
			return err
		}
		i = int64(v)
	} else {
		i, err = strconv.ParseInt(value, h.base, 64)
		if err != nil {
			return err
		}
	}
	target.SetInt(i)
	return nil
}

/* parseHex parses a hexadecimal address with or without 0x prefix */
func parseHex(s string) (int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	v, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
