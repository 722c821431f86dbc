package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go.lepak.sg/bst/must"
)

// readInts reads one line of space separated integers.
// Malformed input panics, there's nothing sensible to do with it.
func readInts(r *bufio.Reader) []int {
	raw, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		panic(err)
	}

	raws := strings.Fields(raw)
	out := make([]int, len(raws))

	for i, rawNum := range raws {
		out[i] = must.Must2(strconv.Atoi(rawNum))
	}
	return out
}
