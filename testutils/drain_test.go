package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recT records failures instead of failing the enclosing test.
type recT struct {
	errors []string
}

func (r *recT) Log(...any)                        {}
func (r *recT) Logf(string, ...any)               {}
func (r *recT) Error(args ...any)                 { r.errors = append(r.errors, fmt.Sprint(args...)) }
func (r *recT) Errorf(format string, args ...any) { r.errors = append(r.errors, fmt.Sprintf(format, args...)) }

func TestDrain(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 3
	close(ch)

	rt := &recT{}
	Drain(rt, []int{1, 3}, ch)
	assert.Empty(t, rt.errors)
}

func TestDrain_Unclosed(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 1

	rt := &recT{}
	Drain(rt, []int{1}, ch)
	assert.Len(t, rt.errors, 1)
}

func TestDrainBlocking(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for _, k := range []int{1, 2, 3} {
			ch <- k
		}
	}()

	rt := &recT{}
	DrainBlocking(rt, []int{1, 2, 3}, ch, time.Second)
	assert.Empty(t, rt.errors)
}

func TestDrainBlocking_Timeout(t *testing.T) {
	ch := make(chan int)

	rt := &recT{}
	DrainBlocking(rt, []int{1}, ch, 10*time.Millisecond)
	assert.Len(t, rt.errors, 1)
}
