package forthrt_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jcorbin/forthrt"
	"github.com/stretchr/testify/assert"
)

func Test_output(t *testing.T) {
	var out bytes.Buffer
	rt := newTestRuntime(t, forthrt.WithOutput(&out))
	expectNoHalt(t, rt, func(rt *forthrt.Runtime) {
		rt.Dot(-42)
		rt.UDot(42)
		rt.DDot(1 << 40)
		rt.Hex()
		rt.UDot(255)
		rt.Decimal()
		rt.Emit('|')
		rt.DotR(7, 4)
		rt.Emit('|')
		rt.UDotR(12345, 2)
		rt.Emit('|')
		rt.DotR(-7, 0)
		rt.Emit('\n')
	})
	assert.Equal(t, "-42 42 1099511627776 FF |   7|12345|-7\n", out.String())
}

func Test_Type(t *testing.T) {
	var out bytes.Buffer
	rt := newTestRuntime(t, forthrt.WithOutput(&out))
	expectNoHalt(t, rt, func(rt *forthrt.Runtime) {
		addr := rt.FetchHere()
		for _, c := range []byte("hello") {
			rt.CComma(c)
		}
		rt.Type(addr, 5)
		rt.Type(addr, 0)
		rt.Type(addr, -1)
		rt.TypeString(", world")
		rt.Emit('\x1b')
	})
	assert.Equal(t, "hello, world\x1b", out.String())
}

func Test_Tee(t *testing.T) {
	var a, b bytes.Buffer
	rt := newTestRuntime(t, forthrt.WithOutput(&a), forthrt.WithTee(&b))
	expectNoHalt(t, rt, func(rt *forthrt.Runtime) { rt.Dot(1) })
	assert.Equal(t, "1 ", a.String())
	assert.Equal(t, "1 ", b.String())
}

type failWriter struct{ err error }

func (fw failWriter) Write([]byte) (int, error) { return 0, fw.err }

func Test_output_failure(t *testing.T) {
	bang := errors.New("bang")
	rt := newTestRuntime(t, forthrt.WithOutput(failWriter{bang}))
	err := rt.Run(context.Background(), func(rt *forthrt.Runtime) error {
		rt.Dot(1)
		return nil
	})
	assert.True(t, errors.Is(err, bang), "expected output error, got %v", err)
	assert.Equal(t, forthrt.ThrowCharIO, forthrt.ThrowCode(err))
}
