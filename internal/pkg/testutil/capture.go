// Package testutil содержит общие утилиты для тестов glctl.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStdout подменяет os.Stdout на время fn и возвращает всё, что было
// в него записано. Чтение идёт параллельно, поэтому большой вывод
// (списки проектов, содержимое файлов) не блокирует fn на заполненном pipe.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r) //nolint:errcheck // pipe закрывается ниже
		done <- buf.Bytes()
	}()

	saved := os.Stdout
	os.Stdout = w
	func() {
		defer func() { os.Stdout = saved }()
		fn()
	}()
	require.NoError(t, w.Close())
	out := <-done
	_ = r.Close() //nolint:errcheck // только чтение
	return string(out)
}
